package accountid

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"clubdesk.app/backend/internal/constant"
)

// Extract resolves the account ID of the current session, preferring the
// `Authorization: ClubID <id>` realm over the account cookie. Returns 0 when
// the request carries no usable identity.
func Extract(ctx *fiber.Ctx) int {
	raw := ""

	authorization := ctx.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authorization, constant.AccountAuthorizationRealm) {
		raw = strings.TrimSpace(strings.TrimPrefix(authorization, constant.AccountAuthorizationRealm))
	}

	if raw == "" {
		raw = ctx.Cookies(constant.AccountCookieKey)
	}

	accountID, err := strconv.Atoi(raw)
	if err != nil || accountID <= 0 {
		return 0
	}
	return accountID
}

// Inject populates the account cookie and the set-account response header,
// for clients where cookies are unavailable.
func Inject(ctx *fiber.Ctx, accountID int) {
	value := url.QueryEscape(strconv.Itoa(accountID))

	ctx.Cookie(&fiber.Cookie{
		Name:     constant.AccountCookieKey,
		Value:    value,
		MaxAge:   constant.AccountAuthMaxCookieAgeSec,
		Path:     "/",
		Expires:  time.Now().Add(time.Second * constant.AccountAuthMaxCookieAgeSec),
		SameSite: "None",
		Secure:   true,
	})

	ctx.Set(constant.AccountSetHeader, value)
}
