package catalog

// Balance sheet vocabulary, in output order: assets, liabilities, equity.
var balanceEntries = []*Entry{
	{
		CanonicalName: "Cash and cash equivalents",
		PrimaryPatterns: []string{
			`^CashAndCashEquivalentsAtCarryingValue$`,
			`^CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents$`,
			`^CashAndDueFromBanks$`,
		},
		AlternatePatterns: []string{`^CashAndCashEquivalents$`},
		HumanPatterns:     []string{`cash and cash equivalents`, `^cash$`},
		Priority:          9,
	},
	{
		CanonicalName: "Short-term investments",
		PrimaryPatterns: []string{
			`^ShortTermInvestments$`,
			`^AvailableForSaleSecuritiesCurrent$`,
			`^MarketableSecuritiesCurrent$`,
		},
		AlternatePatterns: []string{`^CurrentInvestments$`},
		HumanPatterns:     []string{`short.term investments`, `marketable securities`},
		Priority:          6,
	},
	{
		CanonicalName: "Accounts receivable",
		PrimaryPatterns: []string{
			`^AccountsReceivableNetCurrent$`,
			`^ReceivablesNetCurrent$`,
			`^AccountsNotesAndLoansReceivableNetCurrent$`,
		},
		AlternatePatterns: []string{`^TradeAndOtherCurrentReceivables$`},
		HumanPatterns:     []string{`accounts receivable`, `trade receivables`},
		Priority:          7,
	},
	{
		CanonicalName: "Inventory",
		PrimaryPatterns: []string{
			`^InventoryNet$`,
			`^InventoryFinishedGoodsNetOfReserves$`,
		},
		AlternatePatterns: []string{`^Inventories$`},
		HumanPatterns:     []string{`^inventor(y|ies)`, `merchandise inventor`},
		Priority:          7,
	},
	{
		CanonicalName: "Prepaid expenses",
		PrimaryPatterns: []string{
			`^PrepaidExpenseCurrent$`,
			`^PrepaidExpenseAndOtherAssetsCurrent$`,
		},
		AlternatePatterns: []string{`^CurrentPrepayments`},
		HumanPatterns:     []string{`prepaid expenses`},
		Priority:          5,
	},
	{
		CanonicalName: "Other current assets",
		PrimaryPatterns: []string{
			`^OtherAssetsCurrent$`,
		},
		AlternatePatterns: []string{`^OtherCurrentAssets$`},
		HumanPatterns:     []string{`other current assets`},
		Priority:          4,
	},
	{
		CanonicalName:     "Total current assets",
		PrimaryPatterns:   []string{`^AssetsCurrent$`},
		AlternatePatterns: []string{`^CurrentAssets$`},
		HumanPatterns:     []string{`total current assets`},
		StrictEquality:    true,
		Priority:          10,
	},
	{
		CanonicalName: "Property, plant and equipment",
		PrimaryPatterns: []string{
			`^PropertyPlantAndEquipmentNet$`,
			`^PropertyPlantAndEquipmentAndFinanceLeaseRightOfUseAssetAfterAccumulatedDepreciationAndAmortization$`,
		},
		AlternatePatterns: []string{`^PropertyPlantAndEquipment$`},
		HumanPatterns:     []string{`property,? plant and equipment`, `property and equipment`},
		Priority:          8,
	},
	{
		CanonicalName:     "Goodwill",
		PrimaryPatterns:   []string{`^Goodwill$`},
		AlternatePatterns: []string{`^Goodwill$`},
		HumanPatterns:     []string{`^goodwill$`},
		StrictEquality:    true,
		Priority:          8,
	},
	{
		CanonicalName: "Intangible assets",
		PrimaryPatterns: []string{
			`^IntangibleAssetsNetExcludingGoodwill$`,
			`^FiniteLivedIntangibleAssetsNet$`,
		},
		AlternatePatterns: []string{`^IntangibleAssetsOtherThanGoodwill$`},
		HumanPatterns:     []string{`intangible assets`},
		Priority:          6,
	},
	{
		CanonicalName: "Long-term investments",
		PrimaryPatterns: []string{
			`^LongTermInvestments$`,
			`^AvailableForSaleSecuritiesNoncurrent$`,
			`^MarketableSecuritiesNoncurrent$`,
		},
		AlternatePatterns: []string{`^NoncurrentInvestments$`},
		HumanPatterns:     []string{`long.term investments`},
		Priority:          5,
	},
	{
		CanonicalName: "Other non-current assets",
		PrimaryPatterns: []string{
			`^OtherAssetsNoncurrent$`,
		},
		AlternatePatterns: []string{`^OtherNoncurrentAssets$`},
		HumanPatterns:     []string{`other (non-?current|long.term) assets`},
		Priority:          4,
	},
	{
		CanonicalName:     "Total Assets",
		PrimaryPatterns:   []string{`^Assets$`},
		AlternatePatterns: []string{`^Assets$`},
		HumanPatterns:     []string{`total assets`},
		StrictEquality:    true,
		Priority:          10,
	},
	{
		CanonicalName: "Accounts payable",
		PrimaryPatterns: []string{
			`^AccountsPayableCurrent$`,
			`^AccountsPayableTradeCurrent$`,
		},
		AlternatePatterns: []string{`^TradeAndOtherCurrentPayables$`},
		HumanPatterns:     []string{`accounts payable`, `trade payables`},
		Priority:          7,
	},
	{
		CanonicalName: "Accrued liabilities",
		PrimaryPatterns: []string{
			`^AccruedLiabilitiesCurrent$`,
			`^EmployeeRelatedLiabilitiesCurrent$`,
		},
		AlternatePatterns: []string{`^Accruals`},
		HumanPatterns:     []string{`accrued (liabilities|expenses|compensation)`},
		Priority:          6,
	},
	{
		CanonicalName: "Short-term debt",
		PrimaryPatterns: []string{
			`^ShortTermBorrowings$`,
			`^LongTermDebtCurrent$`,
			`^DebtCurrent$`,
			`^CommercialPaper$`,
		},
		AlternatePatterns: []string{`^CurrentBorrowings`},
		HumanPatterns: []string{
			`short.term (debt|borrowings)`,
			`current (portion|maturities) of long.term debt`,
			`commercial paper`,
		},
		Priority: 6,
	},
	{
		CanonicalName: "Deferred revenue",
		PrimaryPatterns: []string{
			`^ContractWithCustomerLiabilityCurrent$`,
			`^DeferredRevenueCurrent$`,
		},
		AlternatePatterns: []string{`^CurrentContractLiabilities`},
		HumanPatterns:     []string{`deferred revenue`, `unearned revenue`, `contract liabilities`},
		Priority:          5,
	},
	{
		CanonicalName: "Other current liabilities",
		PrimaryPatterns: []string{
			`^OtherLiabilitiesCurrent$`,
		},
		AlternatePatterns: []string{`^OtherCurrentLiabilities$`},
		HumanPatterns:     []string{`other current liabilities`},
		Priority:          4,
	},
	{
		CanonicalName:     "Total current liabilities",
		PrimaryPatterns:   []string{`^LiabilitiesCurrent$`},
		AlternatePatterns: []string{`^CurrentLiabilities$`},
		HumanPatterns:     []string{`total current liabilities`},
		StrictEquality:    true,
		Priority:          10,
	},
	{
		CanonicalName: "Long-term debt",
		PrimaryPatterns: []string{
			`^LongTermDebtNoncurrent$`,
			`^LongTermDebt$`,
			`^SeniorLongTermNotes$`,
		},
		AlternatePatterns: []string{`^NoncurrentBorrowings`},
		HumanPatterns:     []string{`long.term debt`, `term debt`},
		Priority:          7,
	},
	{
		CanonicalName: "Operating lease liabilities",
		PrimaryPatterns: []string{
			`^OperatingLeaseLiabilityNoncurrent$`,
			`^OperatingLeaseLiability$`,
		},
		AlternatePatterns: []string{`^NoncurrentLeaseLiabilities$`},
		HumanPatterns:     []string{`operating lease liabilit`},
		Priority:          5,
	},
	{
		CanonicalName: "Deferred tax liabilities",
		PrimaryPatterns: []string{
			`^DeferredIncomeTaxLiabilitiesNet$`,
			`^DeferredTaxLiabilitiesNoncurrent$`,
		},
		AlternatePatterns: []string{`^DeferredTaxLiabilities$`},
		HumanPatterns:     []string{`deferred (income )?tax liabilit`},
		Priority:          5,
	},
	{
		CanonicalName: "Other non-current liabilities",
		PrimaryPatterns: []string{
			`^OtherLiabilitiesNoncurrent$`,
		},
		AlternatePatterns: []string{`^OtherNoncurrentLiabilities$`},
		HumanPatterns:     []string{`other (non-?current|long.term) liabilities`},
		Priority:          4,
	},
	{
		CanonicalName:     "Total liabilities",
		PrimaryPatterns:   []string{`^Liabilities$`},
		AlternatePatterns: []string{`^Liabilities$`},
		HumanPatterns:     []string{`total liabilities$`},
		StrictEquality:    true,
		Priority:          10,
	},
	{
		CanonicalName: "Common stock",
		PrimaryPatterns: []string{
			`^CommonStockValue$`,
			`^CommonStocksIncludingAdditionalPaidInCapital$`,
			`^AdditionalPaidInCapital(CommonStock)?$`,
		},
		AlternatePatterns: []string{`^IssuedCapital$`, `^SharePremium$`},
		HumanPatterns:     []string{`common stock`, `additional paid.in capital`, `share capital`},
		Priority:          5,
	},
	{
		CanonicalName: "Retained earnings",
		PrimaryPatterns: []string{
			`^RetainedEarningsAccumulatedDeficit$`,
		},
		AlternatePatterns: []string{`^RetainedEarnings$`},
		HumanPatterns:     []string{`retained earnings`, `accumulated deficit`},
		Priority:          6,
	},
	{
		CanonicalName: "Treasury stock",
		PrimaryPatterns: []string{
			`^TreasuryStockValue$`,
			`^TreasuryStockCommonValue$`,
		},
		AlternatePatterns: []string{`^TreasuryShares$`},
		HumanPatterns:     []string{`treasury stock`, `treasury shares`},
		Priority:          5,
	},
	{
		CanonicalName: "Accumulated other comprehensive income",
		PrimaryPatterns: []string{
			`^AccumulatedOtherComprehensiveIncomeLossNetOfTax$`,
		},
		AlternatePatterns: []string{`^AccumulatedOtherComprehensiveIncome$`, `^OtherReserves$`},
		HumanPatterns:     []string{`accumulated other comprehensive`},
		Priority:          5,
	},
	{
		CanonicalName: "Stockholders Equity",
		PrimaryPatterns: []string{
			`^StockholdersEquity$`,
			`^StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest$`,
		},
		AlternatePatterns: []string{`^Equity$`, `^EquityAttributableToOwnersOfParent$`},
		HumanPatterns: []string{
			`total (stockholders.?|shareholders.?) equity`,
			`total equity`,
		},
		StrictEquality: true,
		Priority:       10,
	},
	{
		CanonicalName: "Total liabilities and equity",
		PrimaryPatterns: []string{
			`^LiabilitiesAndStockholdersEquity$`,
		},
		AlternatePatterns: []string{`^EquityAndLiabilities$`},
		HumanPatterns:     []string{`total liabilities and (stockholders.?|shareholders.?) equity`},
		StrictEquality:    true,
		Priority:          9,
	},
}
