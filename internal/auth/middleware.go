package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// Messages returned to callers on rejection.
const (
	MsgAuthenticationRequired = "You need to authenticate before accessing this resource."
	MsgUsersOnly              = "Only users can access this resource."
	MsgCompaniesOnly          = "Only companies can access this resource."
	MsgNotAllowed             = "You are not allowed to access this resource."
)

const (
	claimsKey   = "auth_claims"
	usernameKey = "auth_username"
	companyKey  = "auth_company"
)

var (
	errWrongRole     = errors.New("token identity has the wrong role")
	errOwnerMismatch = errors.New("token identity does not own the resource")
)

// RejectionRecorder receives a sample for every rejected request.
type RejectionRecorder interface {
	RecordAuthRejection(check string, status int)
}

// Authorizer builds request interceptors that verify tokens and gate routes.
type Authorizer struct {
	tokens  *TokenManager
	logger  *zap.Logger
	metrics RejectionRecorder
}

// NewAuthorizer constructs middleware. metrics may be nil.
func NewAuthorizer(tokens *TokenManager, logger *zap.Logger, metrics RejectionRecorder) *Authorizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authorizer{tokens: tokens, logger: logger, metrics: metrics}
}

// RequireAuthorization accepts any valid token and stores its claims.
func (a *Authorizer) RequireAuthorization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := a.verify(c)
		if err != nil {
			return a.reject(c, "authorization", err, apperrors.NewUnauthorized(MsgAuthenticationRequired))
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireUserAuthorization accepts only user tokens and stores the username.
func (a *Authorizer) RequireUserAuthorization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := a.verify(c)
		if err != nil {
			return a.reject(c, "user", err, apperrors.NewUnauthorized(MsgUsersOnly))
		}
		user, ok := claims.Identity.(UserIdentity)
		if !ok {
			return a.reject(c, "user", errWrongRole, apperrors.NewUnauthorized(MsgUsersOnly))
		}
		c.Locals(claimsKey, claims)
		c.Locals(usernameKey, user.Username)
		return c.Next()
	}
}

// RequireCompanyAuthorization accepts only company tokens and stores the handle.
func (a *Authorizer) RequireCompanyAuthorization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := a.verify(c)
		if err != nil {
			return a.reject(c, "company", err, apperrors.NewUnauthorized(MsgCompaniesOnly))
		}
		company, ok := claims.Identity.(CompanyIdentity)
		if !ok {
			return a.reject(c, "company", errWrongRole, apperrors.NewUnauthorized(MsgCompaniesOnly))
		}
		c.Locals(claimsKey, claims)
		c.Locals(companyKey, company.Handle)
		return c.Next()
	}
}

// RequireCorrectUser accepts only the user named by the param path segment.
func (a *Authorizer) RequireCorrectUser(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := a.verify(c)
		if err != nil {
			return a.reject(c, "correct_user", err, apperrors.NewForbidden(MsgNotAllowed))
		}
		user, ok := claims.Identity.(UserIdentity)
		if !ok || user.Username != c.Params(param) {
			return a.reject(c, "correct_user", errOwnerMismatch, apperrors.NewForbidden(MsgNotAllowed))
		}
		c.Locals(claimsKey, claims)
		c.Locals(usernameKey, user.Username)
		return c.Next()
	}
}

// RequireCorrectCompany accepts only the company named by the param path segment.
func (a *Authorizer) RequireCorrectCompany(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := a.verify(c)
		if err != nil {
			return a.reject(c, "correct_company", err, apperrors.NewForbidden(MsgNotAllowed))
		}
		company, ok := claims.Identity.(CompanyIdentity)
		if !ok || company.Handle != c.Params(param) {
			return a.reject(c, "correct_company", errOwnerMismatch, apperrors.NewForbidden(MsgNotAllowed))
		}
		c.Locals(claimsKey, claims)
		c.Locals(companyKey, company.Handle)
		return c.Next()
	}
}

func (a *Authorizer) verify(c *fiber.Ctx) (Claims, error) {
	return a.tokens.Verify(tokenFromHeader(c.Get(fiber.HeaderAuthorization)))
}

// reject logs the internal reason and returns the public error unchanged.
func (a *Authorizer) reject(c *fiber.Ctx, check string, reason error, public error) error {
	status := fiber.StatusInternalServerError
	var de *apperrors.DomainError
	if errors.As(public, &de) {
		status = de.HTTPStatus
	}
	a.logger.Debug("request rejected",
		zap.String("check", check),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(reason))
	if a.metrics != nil {
		a.metrics.RecordAuthRejection(check, status)
	}
	return public
}

// tokenFromHeader returns the raw token. The header normally carries the bare
// token; a "Bearer " scheme prefix is stripped when present.
func tokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// ClaimsFromContext retrieves the verified claims.
func ClaimsFromContext(c *fiber.Ctx) (Claims, bool) {
	claims, ok := c.Locals(claimsKey).(Claims)
	return claims, ok
}

// UsernameFromContext retrieves the authenticated username.
func UsernameFromContext(c *fiber.Ctx) (string, bool) {
	username, ok := c.Locals(usernameKey).(string)
	return username, ok && username != ""
}

// CompanyFromContext retrieves the authenticated company handle.
func CompanyFromContext(c *fiber.Ctx) (string, bool) {
	handle, ok := c.Locals(companyKey).(string)
	return handle, ok && handle != ""
}
