package engine

import "regexp"

// PlatformUnknown is a valid, non-error outcome of detection.
const PlatformUnknown = "unknown"

type platformRule struct {
	re  *regexp.Regexp
	tag string
}

// Ordering encodes precedence: named banks come before the generic "bank"
// catch-all, so a specific match always wins.
var platformRules = []platformRule{
	{regexp.MustCompile(`(?i)gcash`), "gcash"},
	{regexp.MustCompile(`(?i)maya|paymaya`), "maya"},
	{regexp.MustCompile(`(?i)palawan`), "palawan"},
	{regexp.MustCompile(`(?i)coins\.ph|coinsph`), "coins.ph"},
	{regexp.MustCompile(`(?i)shopee\s*pay`), "shopeepay"},
	{regexp.MustCompile(`(?i)grabpay`), "grabpay"},

	// International wallets and remittance services
	{regexp.MustCompile(`(?i)paypal`), "paypal"},
	{regexp.MustCompile(`(?i)stripe`), "stripe"},
	{regexp.MustCompile(`(?i)venmo`), "venmo"},
	{regexp.MustCompile(`(?i)cash\s*app`), "cash_app"},
	{regexp.MustCompile(`(?i)zelle`), "zelle"},
	{regexp.MustCompile(`(?i)revolut`), "revolut"},
	{regexp.MustCompile(`(?i)wise|transferwise`), "wise"},
	{regexp.MustCompile(`(?i)worldremit`), "worldremit"},
	{regexp.MustCompile(`(?i)remitly`), "remitly"},
	{regexp.MustCompile(`(?i)western\s*union`), "western_union"},

	// Named banks, then the generic catch-all
	{regexp.MustCompile(`(?i)bpi`), "bpi"},
	{regexp.MustCompile(`(?i)bdo`), "bdo"},
	{regexp.MustCompile(`(?i)metrobank`), "metrobank"},
	{regexp.MustCompile(`(?i)unionbank`), "unionbank"},
	{regexp.MustCompile(`(?i)landbank`), "landbank"},
	{regexp.MustCompile(`(?i)chase`), "chase"},
	{regexp.MustCompile(`(?i)wells\s*fargo|bank\s*of\s*america|bank`), "bank"},
}

// DetectPlatform classifies the issuing platform or bank. The rule table is
// scanned top to bottom and the first match wins.
func DetectPlatform(text string) string {
	for _, rule := range platformRules {
		if rule.re.MatchString(text) {
			return rule.tag
		}
	}
	return PlatformUnknown
}
