package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ghost_protocol/internal/usecase"
)

func setupRouter(r *gin.Engine, u UseCases) {
	r.HandleMethodNotAllowed = true

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	{
		v1 := r.Group("api/v1/")
		setupScan(v1, u)
		setupSubscriptions(v1, u)
		setupApiKeys(v1, u)
	}
}

func setupScan(r *gin.RouterGroup, u UseCases) {
	r.POST("/scan", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		res, err := u.Sub.Scan(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toScanResponse(res))
	})

	r.GET("/stats", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		stats, err := u.Sub.Stats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toStatsResponse(stats))
	})

	r.GET("/status", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		status, err := u.Sub.DBStatus(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": status})
	})

	r.GET("/savings", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		summary, err := u.Sub.SavingsSummary(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toSavingsResponse(summary))
	})

	r.GET("/activity", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		entries, err := u.Sub.ActivityLog(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		resp := make([]*activityEntryResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, &activityEntryResponse{
				ID:        e.ID,
				Action:    e.Action,
				Detail:    e.Detail,
				Timestamp: e.Timestamp,
			})
		}
		c.JSON(http.StatusOK, resp)
	})
}

func setupSubscriptions(r *gin.RouterGroup, u UseCases) {
	r.GET("/subscriptions", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}

		filter := usecase.ListFilter(c.Query("filter"))
		subs, err := u.Sub.ListSubs(c, filter)
		switch {
		case errors.Is(err, usecase.ErrInvalidFilter):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "filter must be all or active"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		resp := make([]*subscriptionResponse, 0, len(subs))
		for _, s := range subs {
			resp = append(resp, toSubscriptionResponse(s))
		}
		c.JSON(http.StatusOK, resp)
	})

	r.POST("/subscriptions/:id/cancellation-request", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
			return
		}

		req, err := u.Sub.RequestCancellation(c, id)
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
			return
		case errors.Is(err, usecase.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		case errors.Is(err, usecase.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "already cancelled"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, &cancellationRequestResponse{
			ID:           req.ID,
			EmailSubject: req.EmailSubject,
			EmailBody:    req.EmailBody,
		})
	})

	r.POST("/subscriptions/:id/confirm", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		if c.ContentType() != "" && c.ContentType() != "application/json" {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
			return
		}
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
			return
		}

		var input confirmCancellationInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		sub, err := u.Sub.ConfirmCancellation(c, id, input.TxReference, input.RecordProof)
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
			return
		case errors.Is(err, usecase.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, toSubscriptionResponse(sub))
	})

	r.OPTIONS("/subscriptions", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func setupApiKeys(r *gin.RouterGroup, u UseCases) {
	r.GET("/api-keys", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		statuses, err := u.Keys.List(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		resp := make([]*apiKeyStatusResponse, 0, len(statuses))
		for _, s := range statuses {
			resp = append(resp, toApiKeyStatusResponse(s))
		}
		c.JSON(http.StatusOK, resp)
	})

	r.PUT("/api-keys/:service", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		if c.ContentType() != "" && c.ContentType() != "application/json" {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
			return
		}

		var input saveApiKeyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := u.Keys.Save(c, c.Param("service"), input.Key)
		switch {
		case errors.Is(err, usecase.ErrInvalidApiKey):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid api key"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/api-keys/:service", func(c *gin.Context) {
		err := u.Keys.Delete(c, c.Param("service"))
		switch {
		case errors.Is(err, usecase.ErrInvalidApiKey):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid service"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.OPTIONS("/api-keys", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func acceptsJSON(h string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	parts := strings.Split(h, ",")
	for _, p := range parts {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == "application/json" || mt == "*/*" {
			return true
		}
	}
	return false
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	c.JSON(http.StatusNotAcceptable, gin.H{"error": "Accept application/json only"})
	return false
}
