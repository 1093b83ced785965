package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joeyave/scala-booking/auth"
	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/joeyave/scala-booking/service"
)

const (
	actorKey        = "actor"
	organizationKey = "organization"
)

// Guard is a check run before a handler. Check reports whether the request may go on,
// and why not when it may not.
type Guard struct {
	Name   string
	Status int
	Check  func(ctx *gin.Context) (bool, string)
}

// Guarded runs the guards in order and aborts on the first failure.
func Guarded(guards ...Guard) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		for _, guard := range guards {
			ok, reason := guard.Check(ctx)
			if ctx.IsAborted() {
				return
			}
			if !ok {
				code := helpers.CodeForbidden
				if guard.Status == http.StatusUnauthorized {
					code = helpers.CodeUnauthorized
				}
				respondStatusError(ctx, guard.Status, code, reason)
				return
			}
		}
		ctx.Next()
	}
}

type Guards struct {
	JWTSecret   string
	UserService *service.UserService
	TeamService *service.TeamService
}

// bearerToken reads "Authorization: Bearer <jwt>", falling back to the access_token cookie pages are sent with.
func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := ctx.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

// ApiAuth authenticates the caller and puts the caller's Actor on the context.
func (g *Guards) ApiAuth() Guard {
	return Guard{
		Name:   "ApiAuth",
		Status: http.StatusUnauthorized,
		Check: func(ctx *gin.Context) (bool, string) {
			token := bearerToken(ctx)
			if token == "" {
				return false, "No bearer token provided"
			}

			claims, err := auth.ParseValidate(g.JWTSecret, token)
			if err != nil {
				return false, "Invalid access token"
			}
			userID, err := claims.UserID()
			if err != nil {
				return false, "Invalid access token"
			}

			actor, err := g.UserService.LoadActor(ctx.Request.Context(), userID)
			if helpers.HasCode(err, helpers.CodeNotFound) {
				return false, "User not found"
			}
			if err != nil {
				respondError(ctx, err)
				return false, ""
			}

			ctx.Set(actorKey, actor)
			return true, ""
		},
	}
}

// IsOrg loads the organization named by the orgId path parameter.
func (g *Guards) IsOrg() Guard {
	return Guard{
		Name:   "IsOrg",
		Status: http.StatusForbidden,
		Check: func(ctx *gin.Context) (bool, string) {
			orgID, err := strconv.ParseInt(ctx.Param("orgId"), 10, 64)
			if err != nil {
				respondError(ctx, helpers.BadRequest("Validation failed (numeric string is expected)"))
				return false, ""
			}

			org, err := g.TeamService.FindOrganization(ctx.Request.Context(), orgID)
			if helpers.HasCode(err, helpers.CodeNotFound) {
				return false, "Invalid organization"
			}
			if err != nil {
				respondError(ctx, err)
				return false, ""
			}

			ctx.Set(organizationKey, org)
			return true, ""
		},
	}
}

// Roles demands an accepted membership in the organization; ORG_ADMIN also needs OWNER or ADMIN.
// System admins always pass.
func (g *Guards) Roles(role entity.OrgRole) Guard {
	return Guard{
		Name:   "Roles",
		Status: http.StatusForbidden,
		Check: func(ctx *gin.Context) (bool, string) {
			actor := actorFrom(ctx)
			org := organizationFrom(ctx)
			if actor == nil || org == nil {
				return false, "Missing request context"
			}
			if actor.IsSystemAdmin {
				return true, ""
			}

			membership, err := g.TeamService.FindMembership(ctx.Request.Context(), org.ID, actor.UserID)
			if helpers.HasCode(err, helpers.CodeNotFound) {
				return false, "User is not part of the organization"
			}
			if err != nil {
				respondError(ctx, err)
				return false, ""
			}
			if !membership.Accepted {
				return false, "User has not accepted the organization invite"
			}

			if role == entity.OrgRoleAdmin && !membership.IsOwnerOrAdmin() {
				return false, "User is not an organization admin"
			}
			return true, ""
		},
	}
}

// PlatformPlan only restricts platform organizations.
func (g *Guards) PlatformPlan(required entity.PlatformPlan) Guard {
	return Guard{
		Name:   "PlatformPlan",
		Status: http.StatusForbidden,
		Check: func(ctx *gin.Context) (bool, string) {
			org := organizationFrom(ctx)
			if org == nil {
				return false, "Missing request context"
			}
			if !org.IsPlatform {
				return true, ""
			}
			if !org.Plan().Includes(required) {
				return false, "Please upgrade your plan to " + string(required) + " to access this feature"
			}
			return true, ""
		},
	}
}

func (g *Guards) IsAdminAPIEnabled() Guard {
	return Guard{
		Name:   "IsAdminAPIEnabled",
		Status: http.StatusForbidden,
		Check: func(ctx *gin.Context) (bool, string) {
			org := organizationFrom(ctx)
			if org == nil {
				return false, "Missing request context"
			}
			if org.IsPlatform || org.IsAdminAPIEnabled() {
				return true, ""
			}
			return false, "Organization does not have admin API access"
		},
	}
}

// Organization builds the guard chain of an organization route.
func (g *Guards) Organization(role entity.OrgRole, plan entity.PlatformPlan) gin.HandlerFunc {
	return Guarded(
		g.ApiAuth(),
		g.IsOrg(),
		g.Roles(role),
		g.PlatformPlan(plan),
		g.IsAdminAPIEnabled(),
	)
}

func actorFrom(ctx *gin.Context) *service.Actor {
	v, ok := ctx.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*service.Actor)
	return actor
}

func organizationFrom(ctx *gin.Context) *entity.Team {
	v, ok := ctx.Get(organizationKey)
	if !ok {
		return nil
	}
	org, _ := v.(*entity.Team)
	return org
}
