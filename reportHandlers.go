package main

import (
	"errors"
	"net/http"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/models/reports"
	"bitbucket.org/craftlane/marketplace_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var ve validator.ValidationErrors
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		ctx := utils.SetSkipTenantScopeInContext(c.Request.Context(), true)
		db := config.GetDB()
		var user models.User
		if err := db.WithContext(ctx).Where("username = ?", req.Username).Take(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if user.IsActive != nil && !*user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err := utils.ComparePassword(user.Password, req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		var regionIds []int
		if user.Role.IsRegionRestricted() {
			var err error
			regionIds, err = models.GetUserRegionIds(ctx, user.ID)
			if err != nil {
				config.LogError(config.GetLogger(), "server", "loginHandler", "user regions", user.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
				return
			}
		}

		token, err := utils.JwtGenerate(user.ID, user.BusinessId, string(user.Role), regionIds)
		if err != nil {
			config.LogError(config.GetLogger(), "server", "loginHandler", "token", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "role": user.Role, "region_ids": regionIds})
	}
}

func bindReportRequest(c *gin.Context) (reports.ReportRequest, bool) {
	var req reports.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return req, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return req, false
	}
	return req, true
}

func requireActor(c *gin.Context) bool {
	if _, ok := utils.GetUserIdFromContext(c.Request.Context()); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return false
	}
	return true
}

func reportErrorStatus(err error) int {
	switch {
	case errors.Is(err, utils.ErrInvalidFilterValue):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrForbiddenRegion):
		return http.StatusForbidden
	case errors.Is(err, utils.ErrAllSourcesDegraded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func businessReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireActor(c) {
			return
		}
		req, ok := bindReportRequest(c)
		if !ok {
			return
		}

		ctx, span := tracer.Start(c.Request.Context(), "business_report")
		defer span.End()

		result, err := reports.GetBusinessReport(ctx, req)
		if err != nil {
			c.JSON(reportErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func businessReportExportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireActor(c) {
			return
		}
		req, ok := bindReportRequest(c)
		if !ok {
			return
		}

		ctx, span := tracer.Start(c.Request.Context(), "business_report_export")
		defer span.End()

		result, err := reports.GetBusinessReport(ctx, req)
		if err != nil {
			c.JSON(reportErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=business_report.xlsx")
		if err := reports.ExportExcel(c.Writer, result); err != nil {
			config.LogError(config.GetLogger(), "server", "businessReportExportHandler", "write xlsx", nil, err)
		}
	}
}
