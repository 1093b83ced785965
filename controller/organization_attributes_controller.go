package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/joeyave/scala-booking/service"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type OrganizationAttributesController struct {
	AttributeService *service.OrganizationAttributeService
}

type paginationQuery struct {
	Skip *int `schema:"skip"`
	Take *int `schema:"take"`
}

func parsePagination(ctx *gin.Context) (skip, take int, err error) {
	var q paginationQuery
	if err := decoder.Decode(&q, ctx.Request.URL.Query()); err != nil {
		return 0, 0, helpers.BadRequest("skip and take must be integers")
	}

	take = helpers.DefaultTake
	if q.Skip != nil {
		if *q.Skip < 0 {
			return 0, 0, helpers.BadRequest("skip must not be negative")
		}
		skip = *q.Skip
	}
	if q.Take != nil {
		if *q.Take < 1 || *q.Take > helpers.MaxTake {
			return 0, 0, helpers.BadRequest("take must be between 1 and %d", helpers.MaxTake)
		}
		take = *q.Take
	}
	return skip, take, nil
}

func (h *OrganizationAttributesController) GetOrganizationAttributes(ctx *gin.Context) {
	org := organizationFrom(ctx)

	skip, take, err := parsePagination(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	attributes, err := h.AttributeService.GetOrganizationAttributes(ctx.Request.Context(), org.ID, skip, take)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, attributes)
}

func (h *OrganizationAttributesController) GetOrganizationAttribute(ctx *gin.Context) {
	org := organizationFrom(ctx)

	attribute, err := h.AttributeService.GetOrganizationAttribute(ctx.Request.Context(), org.ID, ctx.Param("attributeId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, attribute)
}

func (h *OrganizationAttributesController) CreateOrganizationAttribute(ctx *gin.Context) {
	org := organizationFrom(ctx)

	var input service.CreateOrganizationAttributeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, helpers.BadRequest("Invalid request body: %v", err))
		return
	}

	attribute, err := h.AttributeService.CreateOrganizationAttribute(ctx.Request.Context(), org.ID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, attribute)
}

func (h *OrganizationAttributesController) UpdateOrganizationAttribute(ctx *gin.Context) {
	org := organizationFrom(ctx)

	var input service.UpdateOrganizationAttributeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, helpers.BadRequest("Invalid request body: %v", err))
		return
	}

	attribute, err := h.AttributeService.UpdateOrganizationAttribute(ctx.Request.Context(), org.ID, ctx.Param("attributeId"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, attribute)
}

func (h *OrganizationAttributesController) DeleteOrganizationAttribute(ctx *gin.Context) {
	org := organizationFrom(ctx)

	attribute, err := h.AttributeService.DeleteOrganizationAttribute(ctx.Request.Context(), org.ID, ctx.Param("attributeId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, attribute)
}
