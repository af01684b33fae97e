package demo

type company struct {
	symbol    string
	name      string
	sector    string
	marketCap float64
	baseROE   float64
}

// universe is the screened S&P 500 subset, in screening order.
var universe = []company{
	{"AAPL", "Apple Inc.", "Technology", 3.4e12, 48},
	{"MSFT", "Microsoft Corporation", "Technology", 3.1e12, 37},
	{"GOOGL", "Alphabet Inc.", "Communication Services", 2.1e12, 27},
	{"AMZN", "Amazon.com Inc.", "Consumer Cyclical", 1.9e12, 17},
	{"TSLA", "Tesla Inc.", "Consumer Cyclical", 0.8e12, 11},
	{"META", "Meta Platforms Inc", "Communication Services", 1.3e12, 27},
	{"NVDA", "NVIDIA Corporation", "Technology", 3.0e12, 42},
	{"JNJ", "Johnson & Johnson", "Healthcare", 0.38e12, 30},
	{"JPM", "JPMorgan Chase & Co.", "Financial Services", 0.6e12, 14},
	{"V", "Visa Inc.", "Financial Services", 0.55e12, 42},
	{"UNH", "UnitedHealth Group", "Healthcare", 0.5e12, 23},
	{"PG", "Procter & Gamble", "Consumer Defensive", 0.39e12, 31},
	{"HD", "The Home Depot Inc.", "Consumer Cyclical", 0.38e12, 45},
	{"MA", "Mastercard Inc.", "Financial Services", 0.44e12, 50},
	{"BAC", "Bank of America Corp.", "Financial Services", 0.3e12, 9},
	{"XOM", "Exxon Mobil Corp.", "Energy", 0.47e12, 18},
	{"ABBV", "AbbVie Inc.", "Healthcare", 0.3e12, 40},
	{"PFE", "Pfizer Inc.", "Healthcare", 0.16e12, 13},
	{"ASML", "ASML Holding", "Technology", 0.28e12, 45},
	{"KO", "The Coca-Cola Company", "Consumer Defensive", 0.27e12, 41},
	{"AVGO", "Broadcom Inc.", "Technology", 0.8e12, 29},
	{"PEP", "PepsiCo Inc.", "Consumer Defensive", 0.23e12, 50},
	{"TMO", "Thermo Fisher Scientific", "Healthcare", 0.21e12, 15},
	{"COST", "Costco Wholesale Corp.", "Consumer Defensive", 0.4e12, 28},
	{"MRK", "Merck & Co. Inc.", "Healthcare", 0.25e12, 24},
	{"WMT", "Walmart Inc.", "Consumer Defensive", 0.6e12, 17},
	{"ABT", "Abbott Laboratories", "Healthcare", 0.19e12, 16},
	{"NFLX", "Netflix Inc.", "Communication Services", 0.3e12, 29},
	{"CRM", "Salesforce Inc.", "Technology", 0.26e12, 6},
	{"ACN", "Accenture plc", "Technology", 0.22e12, 28},
}
