package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/joeyave/scala-booking/service"
)

// EventTypeController serves the viewer.eventTypes procedures. Every procedure takes
// its input as the JSON body and needs an authenticated caller.
type EventTypeController struct {
	EventTypeService *service.EventTypeService
}

func bindInput(ctx *gin.Context, input any) bool {
	if ctx.Request.ContentLength == 0 {
		return true
	}
	if err := ctx.ShouldBindJSON(input); err != nil {
		respondError(ctx, helpers.BadRequest("Invalid input: %v", err))
		return false
	}
	return true
}

func (h *EventTypeController) Get(ctx *gin.Context) {
	var input service.GetEventTypeInput
	if !bindInput(ctx, &input) {
		return
	}

	eventType, err := h.EventTypeService.Get(ctx.Request.Context(), *actorFrom(ctx), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, gin.H{"eventType": eventType})
}

func (h *EventTypeController) List(ctx *gin.Context) {
	groups, err := h.EventTypeService.List(ctx.Request.Context(), *actorFrom(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, gin.H{"eventTypeGroups": groups})
}

func (h *EventTypeController) Update(ctx *gin.Context) {
	var input service.UpdateEventTypeInput
	if !bindInput(ctx, &input) {
		return
	}

	eventType, err := h.EventTypeService.Update(ctx.Request.Context(), *actorFrom(ctx), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, gin.H{"eventType": eventType})
}

func (h *EventTypeController) Delete(ctx *gin.Context) {
	var input service.DeleteEventTypeInput
	if !bindInput(ctx, &input) {
		return
	}

	result, err := h.EventTypeService.Delete(ctx.Request.Context(), *actorFrom(ctx), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, result)
}
