package middleware

import (
	"log"
	"net/http"
	"strings"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"
	"ocorrencias_api/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth.identity"

// RequireAuth resolves the bearer token into an AuthIdentity and stores it
// on the context. Any failure is a 401; there is no anonymous fallback.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized))
			return
		}
		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] rejected token path=%s", c.FullPath())
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized))
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireKind lets through only the given identity kinds.
func RequireKind(kinds ...entities.IdentityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := Identity(c)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized))
			return
		}
		for _, k := range kinds {
			if identity.Kind == k {
				c.Next()
				return
			}
		}
		abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden))
	}
}

// RequirePermission lets through staff carrying perm (or "*").
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := Identity(c)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized))
			return
		}
		if !identity.HasPermission(perm) {
			log.Printf("[auth][middleware] forbidden subject_id=%d kind=%s perm=%s", identity.SubjectID, identity.Kind, perm)
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

// Identity returns the identity RequireAuth stored on the context.
func Identity(c *gin.Context) (entities.AuthIdentity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.AuthIdentity{}, false
	}
	identity, ok := v.(entities.AuthIdentity)
	return identity, ok
}

// SetIdentity is used by tests that exercise handlers without a token.
func SetIdentity(c *gin.Context, identity entities.AuthIdentity) {
	c.Set(identityKey, identity)
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
