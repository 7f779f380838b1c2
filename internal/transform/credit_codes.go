package transform

// Bureau reports classify tradelines with numeric codes. These tables are
// constant lookup data, not mutable state; unmapped codes fall back to
// "Other" / "Unknown" rather than failing the transform.

var creditAccountTypeLabels = map[string]string{
	"01": "Auto Loan",
	"02": "Housing Loan",
	"03": "Property Loan",
	"04": "Loan Against Shares",
	"05": "Personal Loan",
	"06": "Consumer Loan",
	"07": "Gold Loan",
	"08": "Education Loan",
	"09": "Loan to Professional",
	"10": "Credit Card",
	"11": "Leasing",
	"12": "Overdraft",
	"13": "Two-Wheeler Loan",
	"14": "Non-Funded Credit Facility",
	"15": "Loan Against Bank Deposits",
	"16": "Fleet Card",
	"17": "Commercial Vehicle Loan",
	"18": "Telco Wireless",
	"51": "Business Loan",
	"52": "Business Loan (Priority Sector, Agriculture)",
	"53": "Business Loan (Priority Sector, Small Business)",
	"54": "Business Non-Funded Credit Facility",
	"61": "Business Loan Against Bank Deposits",
}

var creditAccountStatusLabels = map[string]string{
	"11": "Active",
	"13": "Paid",
	"21": "Active",
	"22": "Active",
	"23": "Active",
	"24": "Active",
	"25": "Active",
	"71": "Settled",
	"78": "Restructured",
	"80": "Written Off",
	"82": "Active",
	"83": "Closed",
	"84": "Closed",
}

// GetAccountType translates a bureau account-type code to its display label.
func GetAccountType(code string) string {
	if label, ok := creditAccountTypeLabels[code]; ok {
		return label
	}
	return "Other"
}

// GetAccountStatus translates a bureau account-status code to its display label.
func GetAccountStatus(code string) string {
	if label, ok := creditAccountStatusLabels[code]; ok {
		return label
	}
	return "Unknown"
}
