package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/communitydesk/eventdesk/internal/api/handler/v1/response"
	"github.com/communitydesk/eventdesk/internal/auth"
	"github.com/communitydesk/eventdesk/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID  = "userID"
	ContextKeyTokenID = "tokenID"
)

type Authenticator struct {
	signingKey []byte
	sessions   *auth.SessionStore
}

func NewAuthenticator(signingKey string, sessions *auth.SessionStore) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		sessions:   sessions,
	}
}

// VerifyJWT accepts requests carrying a Bearer token with a valid signature
// and a live session, and stores the caller's identity on the context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrTokenMissing())

			return
		}

		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrTokenInvalid())

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenStr)
		if err != nil {
			response.RenderErr(ctx, response.ErrTokenInvalid())

			return
		}

		if !a.sessions.IsActive(ctx.Request.Context(), claims.ID) {
			response.RenderErr(ctx, response.ErrTokenInvalid())

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyTokenID, claims.ID)

		ctx.Next()
	}
}
