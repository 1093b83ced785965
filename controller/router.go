package controller

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
)

type RouterConfig struct {
	Templates          *template.Template
	Guards             *Guards
	RateLimiter        RateLimiter
	RateLimitPerWindow int
	RateLimitWindow    time.Duration

	OrganizationAttributes *OrganizationAttributesController
	EventTypes             *EventTypeController
	BookingPages           *BookingPageController
}

func NewRouter(c RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), helpers.RequestLogger())
	r.SetHTMLTemplate(c.Templates)

	r.GET("/health", func(ctx *gin.Context) {
		respondData(ctx, http.StatusOK, gin.H{"ok": true})
	})

	v2 := r.Group("/v2", RateLimit(c.RateLimiter, "api:v2", c.RateLimitPerWindow, c.RateLimitWindow))
	{
		attributes := v2.Group("/organizations/:orgId/attributes")
		member := c.Guards.Organization(entity.OrgRoleMember, entity.PlatformPlanEssentials)
		admin := c.Guards.Organization(entity.OrgRoleAdmin, entity.PlatformPlanEssentials)

		attributes.GET("", member, c.OrganizationAttributes.GetOrganizationAttributes)
		attributes.GET("/:attributeId", member, c.OrganizationAttributes.GetOrganizationAttribute)
		attributes.POST("", admin, c.OrganizationAttributes.CreateOrganizationAttribute)
		attributes.PATCH("/:attributeId", admin, c.OrganizationAttributes.UpdateOrganizationAttribute)
		attributes.DELETE("/:attributeId", admin, c.OrganizationAttributes.DeleteOrganizationAttribute)
	}

	trpc := r.Group("/trpc", Guarded(c.Guards.ApiAuth()))
	{
		trpc.POST("/viewer.eventTypes.get", c.EventTypes.Get)
		trpc.POST("/viewer.eventTypes.list", c.EventTypes.List)
		trpc.POST("/viewer.eventTypes.update", c.EventTypes.Update)
		trpc.POST("/viewer.eventTypes.delete", c.EventTypes.Delete)
	}

	r.GET("/org/:orgSlug/team/:slug/:type", c.BookingPages.TeamTypePage)

	settings := r.Group("/settings/organizations/:id", Guarded(c.Guards.ApiAuth()))
	{
		settings.GET("/add-teams", c.BookingPages.AddTeamsPage)
		settings.POST("/add-teams", c.BookingPages.AddTeamsSubmit)
	}

	return r
}
