package constant

const (
	// AccountAuthMaxCookieAge in seconds
	AccountAuthMaxCookieAgeSec = 313560000

	AccountCookieKey = "accountID"

	// AccountSetHeader is for the header in which sets the account ID
	AccountSetHeader = "X-ClubDesk-Set-AccountID"

	// AccountAuthorizationRealm is the authorization realm (prefix of value
	// in the `Authorization` header)
	AccountAuthorizationRealm = "ClubID"
)
