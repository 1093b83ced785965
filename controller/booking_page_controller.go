package controller

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/joeyave/scala-booking/service"
	"github.com/joeyave/scala-booking/txt"
	"github.com/joeyave/scala-booking/util"
	"github.com/rs/zerolog/log"
)

const (
	addTeamsStep      = 5
	addTeamsStepCount = 5
)

type BookingPageController struct {
	TeamPageService *service.TeamPageService
	TeamService     *service.TeamService
	AppName         string
	WebsiteURL      string
}

// legacyContext is the request as page loaders see it.
type legacyContext struct {
	Params  map[string]string
	Query   url.Values
	Cookies map[string]string
	Header  http.Header
	Lang    string
}

func buildLegacyCtx(ctx *gin.Context) *legacyContext {
	legacy := &legacyContext{
		Params:  map[string]string{},
		Query:   ctx.Request.URL.Query(),
		Cookies: map[string]string{},
		Header:  ctx.Request.Header,
	}
	for _, p := range ctx.Params {
		legacy.Params[p.Key] = p.Value
	}
	for _, c := range ctx.Request.Cookies() {
		legacy.Cookies[c.Name] = c.Value
	}
	legacy.Lang = txt.Lang(legacy.Query.Get("lang"), legacy.Cookies["lang"], legacy.Header.Get("Accept-Language"))
	return legacy
}

// TimeZone is the visitor's zone from the timeZone query parameter or cookie, UTC otherwise.
func (c *legacyContext) TimeZone() string {
	if tz := c.Query.Get("timeZone"); tz != "" {
		return tz
	}
	if tz := c.Cookies["timeZone"]; tz != "" {
		return tz
	}
	return "UTC"
}

func (h *BookingPageController) pageData(lang string, data gin.H) gin.H {
	page := gin.H{
		"Lang":         lang,
		"AppName":      h.AppName,
		"HideBranding": false,
		"CanonicalURL": "",
		"Description":  "",
	}
	for k, v := range data {
		page[k] = v
	}
	return page
}

func (h *BookingPageController) renderNotFound(ctx *gin.Context, lang string, status int, message string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = message + " | " + h.AppName
	data["Message"] = message
	ctx.HTML(status, "not_found.go.html", h.pageData(lang, data))
}

func (h *BookingPageController) renderError(ctx *gin.Context, lang string, err error) {
	e := helpers.AsError(err)
	if e.Code == helpers.CodeInternal {
		log.Error().Err(err).Str("url", ctx.Request.URL.String()).Msg("Error:")
	}
	message := e.Message
	if e.Code == helpers.CodeNotFound {
		message = txt.Get("page_not_found", lang)
	}
	h.renderNotFound(ctx, lang, e.Status(), message, nil)
}

func (h *BookingPageController) TeamTypePage(ctx *gin.Context) {
	legacy := buildLegacyCtx(ctx)

	props, err := h.TeamPageService.GetTeamTypePageProps(ctx.Request.Context(), service.TeamTypePageInput{
		OrgSlug:        legacy.Params["orgSlug"],
		TeamSlug:       legacy.Params["slug"],
		TypeSlug:       legacy.Params["type"],
		RescheduleUID:  legacy.Query.Get("rescheduleUid"),
		OrgRedirection: legacy.Query.Get("orgRedirection") == "true",
	})
	if err != nil {
		h.renderError(ctx, legacy.Lang, err)
		return
	}

	if props.EventType == nil {
		h.renderNotFound(ctx, legacy.Lang, http.StatusNotFound, txt.Get("event_type_not_found", legacy.Lang), gin.H{
			"Suggestions":  props.SimilarSlugs,
			"BasePath":     "/org/" + props.Org.Slug + "/team/" + props.Team.Slug,
			"HideBranding": props.Team.HideBranding,
		})
		return
	}

	meta := props.Meta(h.AppName, legacy.Lang)

	var rescheduleFrom string
	if props.Booking != nil {
		rescheduleFrom = util.FormatDateTime(props.Booking.StartTime, legacy.TimeZone(), legacy.Lang)
	}

	ctx.HTML(http.StatusOK, "team_type.go.html", h.pageData(legacy.Lang, gin.H{
		"Title":          meta.Title,
		"Description":    meta.Description,
		"CanonicalURL":   h.WebsiteURL + "/org/" + props.Org.Slug + "/team/" + props.Team.Slug + "/" + props.EventType.Slug,
		"HideBranding":   props.Team.HideBranding,
		"Org":            props.Org,
		"Team":           props.Team,
		"Event":          props.EventType,
		"Booking":        props.Booking,
		"RescheduleFrom": rescheduleFrom,
	}))
}

type addTeamsForm struct {
	Names []string `schema:"names"`
}

func (h *BookingPageController) loadAddTeams(ctx *gin.Context, lang string) (int64, bool) {
	orgID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		h.renderError(ctx, lang, helpers.NotFound("Organization %s not found", ctx.Param("id")))
		return 0, false
	}

	if _, err := h.TeamService.FindOrganization(ctx.Request.Context(), orgID); err != nil {
		h.renderError(ctx, lang, err)
		return 0, false
	}

	ok, err := h.TeamService.IsOrgAdmin(ctx.Request.Context(), actorFrom(ctx), orgID)
	if err != nil {
		h.renderError(ctx, lang, err)
		return 0, false
	}
	if !ok {
		h.renderError(ctx, lang, helpers.Forbidden("You are not an admin of this organization"))
		return 0, false
	}

	return orgID, true
}

func (h *BookingPageController) renderAddTeams(ctx *gin.Context, status int, lang string, orgID int64, data gin.H) {
	teams, err := h.TeamService.FindOrganizationTeams(ctx.Request.Context(), orgID)
	if err != nil {
		h.renderError(ctx, lang, err)
		return
	}

	if data == nil {
		data = gin.H{}
	}
	data["Title"] = txt.Get("create_your_teams", lang) + " | " + h.AppName
	data["Description"] = txt.Get("create_your_teams_description", lang)
	data["Step"] = addTeamsStep
	data["StepCount"] = addTeamsStepCount
	data["Teams"] = teams
	ctx.HTML(status, "add_teams.go.html", h.pageData(lang, data))
}

func (h *BookingPageController) AddTeamsPage(ctx *gin.Context) {
	legacy := buildLegacyCtx(ctx)

	orgID, ok := h.loadAddTeams(ctx, legacy.Lang)
	if !ok {
		return
	}

	h.renderAddTeams(ctx, http.StatusOK, legacy.Lang, orgID, nil)
}

func (h *BookingPageController) AddTeamsSubmit(ctx *gin.Context) {
	legacy := buildLegacyCtx(ctx)

	orgID, ok := h.loadAddTeams(ctx, legacy.Lang)
	if !ok {
		return
	}

	if err := ctx.Request.ParseForm(); err != nil {
		h.renderAddTeams(ctx, http.StatusBadRequest, legacy.Lang, orgID, gin.H{"Error": err.Error()})
		return
	}

	var form addTeamsForm
	if err := decoder.Decode(&form, ctx.Request.PostForm); err != nil {
		h.renderAddTeams(ctx, http.StatusBadRequest, legacy.Lang, orgID, gin.H{"Error": err.Error()})
		return
	}

	if !hasNonBlank(form.Names) {
		h.renderAddTeams(ctx, http.StatusBadRequest, legacy.Lang, orgID, gin.H{"Error": txt.Get("team_names_empty", legacy.Lang)})
		return
	}

	created, err := h.TeamService.CreateTeams(ctx.Request.Context(), actorFrom(ctx), orgID, form.Names)
	if helpers.HasCode(err, helpers.CodeBadRequest) || helpers.HasCode(err, helpers.CodeConflict) {
		e := helpers.AsError(err)
		h.renderAddTeams(ctx, e.Status(), legacy.Lang, orgID, gin.H{"Error": e.Message})
		return
	}
	if err != nil {
		h.renderError(ctx, legacy.Lang, err)
		return
	}

	log.Info().Int64("orgId", orgID).Int("count", len(created)).Msg("Teams created from onboarding.")
	h.renderAddTeams(ctx, http.StatusCreated, legacy.Lang, orgID, gin.H{"Created": created})
}

func hasNonBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
