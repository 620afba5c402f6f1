package catalog

// Cash flow vocabulary, in output order: operating, investing, financing,
// summary rows.
var cashFlowEntries = []*Entry{
	{
		CanonicalName: "Net income",
		PrimaryPatterns: []string{
			`^NetIncomeLoss$`,
			`^ProfitLoss$`,
		},
		AlternatePatterns: []string{`^ProfitLoss$`},
		HumanPatterns:     []string{`^net income`, `^net earnings`, `^net loss`},
		StrictEquality:    true,
		Priority:          9,
	},
	{
		CanonicalName: "Depreciation and amortization",
		PrimaryPatterns: []string{
			`^DepreciationDepletionAndAmortization$`,
			`^DepreciationAmortizationAndAccretionNet$`,
			`^Depreciation$`,
			`^AmortizationOfIntangibleAssets$`,
		},
		AlternatePatterns: []string{`^DepreciationAndAmortisationExpense$`},
		HumanPatterns:     []string{`depreciation( and|,)? amorti[sz]ation`, `^depreciation$`},
		Priority:          8,
	},
	{
		CanonicalName: "Stock-based compensation",
		PrimaryPatterns: []string{
			`^ShareBasedCompensation$`,
			`^AllocatedShareBasedCompensationExpense$`,
		},
		AlternatePatterns: []string{`^SharebasedPaymentExpense`},
		HumanPatterns:     []string{`(stock|share).based compensation`},
		Priority:          7,
	},
	{
		CanonicalName: "Deferred income taxes",
		PrimaryPatterns: []string{
			`^DeferredIncomeTaxExpenseBenefit$`,
			`^DeferredIncomeTaxesAndTaxCredits$`,
		},
		AlternatePatterns: []string{`^DeferredTaxExpense`},
		HumanPatterns:     []string{`deferred (income )?taxes`},
		Priority:          5,
	},
	{
		CanonicalName: "Changes in working capital",
		PrimaryPatterns: []string{
			`^IncreaseDecreaseInOperatingCapital$`,
			`^IncreaseDecreaseInAccountsReceivable$`,
			`^IncreaseDecreaseInInventories$`,
			`^IncreaseDecreaseInAccountsPayable`,
		},
		AlternatePatterns: []string{`^AdjustmentsForDecreaseIncreaseIn`},
		HumanPatterns:     []string{`changes? in (operating assets|working capital)`},
		Priority:          4,
	},
	{
		CanonicalName: "Net cash from operating activities",
		PrimaryPatterns: []string{
			`^NetCashProvidedByUsedInOperatingActivities(ContinuingOperations)?$`,
		},
		AlternatePatterns: []string{`^CashFlowsFromUsedInOperatingActivities$`},
		HumanPatterns: []string{
			`net cash (provided by|used in|from|generated by).*operating`,
			`cash (flows? )?from operating activities`,
		},
		StrictEquality: true,
		Priority:       10,
	},
	{
		CanonicalName: "Capital expenditures",
		PrimaryPatterns: []string{
			`^PaymentsToAcquirePropertyPlantAndEquipment$`,
			`^PaymentsToAcquireProductiveAssets$`,
			`^PaymentsForCapitalImprovements$`,
		},
		AlternatePatterns: []string{`^PurchaseOfPropertyPlantAndEquipment$`},
		HumanPatterns: []string{
			`(purchases?|acquisition|payments? to acquire) of property`,
			`capital expenditures`,
		},
		Priority: 8,
	},
	{
		CanonicalName: "Acquisitions",
		PrimaryPatterns: []string{
			`^PaymentsToAcquireBusinessesNetOfCashAcquired$`,
			`^PaymentsToAcquireBusinessesAndInterestInAffiliatesNetOfCashAcquired$`,
		},
		AlternatePatterns: []string{`^CashFlowsUsedInObtainingControlOfSubsidiaries`},
		HumanPatterns:     []string{`acquisitions?,? net of cash`, `business acquisitions`},
		Priority:          6,
	},
	{
		CanonicalName: "Purchases of investments",
		PrimaryPatterns: []string{
			`^PaymentsToAcquireInvestments$`,
			`^PaymentsToAcquireAvailableForSaleSecuritiesDebt$`,
			`^PaymentsToAcquireMarketableSecurities$`,
		},
		AlternatePatterns: []string{`^PurchaseOfFinancialInstruments`},
		HumanPatterns:     []string{`purchases of (marketable securities|investments)`},
		Priority:          5,
	},
	{
		CanonicalName: "Sales and maturities of investments",
		PrimaryPatterns: []string{
			`^ProceedsFromSaleAndMaturityOfMarketableSecurities$`,
			`^ProceedsFromSaleOfAvailableForSaleSecuritiesDebt$`,
			`^ProceedsFromMaturitiesPrepaymentsAndCallsOfAvailableForSaleSecurities$`,
		},
		AlternatePatterns: []string{`^ProceedsFromSalesOfFinancialInstruments`},
		HumanPatterns:     []string{`(proceeds from|sales of).*(maturities|marketable securities|investments)`},
		Priority:          5,
	},
	{
		CanonicalName: "Net cash from investing activities",
		PrimaryPatterns: []string{
			`^NetCashProvidedByUsedInInvestingActivities(ContinuingOperations)?$`,
		},
		AlternatePatterns: []string{`^CashFlowsFromUsedInInvestingActivities$`},
		HumanPatterns: []string{
			`net cash (provided by|used in|from|generated by).*investing`,
			`cash (flows? )?from investing activities`,
		},
		StrictEquality: true,
		Priority:       10,
	},
	{
		CanonicalName: "Debt issued",
		PrimaryPatterns: []string{
			`^ProceedsFromIssuanceOfLongTermDebt$`,
			`^ProceedsFromIssuanceOfDebt$`,
			`^ProceedsFromNotesPayable$`,
		},
		AlternatePatterns: []string{`^ProceedsFromBorrowings`},
		HumanPatterns:     []string{`(proceeds from|issuance of).*(debt|notes|borrowings)`},
		Priority:          5,
	},
	{
		CanonicalName: "Debt repaid",
		PrimaryPatterns: []string{
			`^RepaymentsOfLongTermDebt$`,
			`^RepaymentsOfDebt$`,
			`^RepaymentsOfNotesPayable$`,
		},
		AlternatePatterns: []string{`^RepaymentsOfBorrowings`},
		HumanPatterns:     []string{`repayments? of.*(debt|notes|borrowings)`},
		Priority:          5,
	},
	{
		CanonicalName: "Stock repurchased",
		PrimaryPatterns: []string{
			`^PaymentsForRepurchaseOfCommonStock$`,
			`^TreasuryStockValueAcquiredCostMethod$`,
		},
		AlternatePatterns: []string{`^PaymentsToAcquireOrRedeemEntitysShares$`},
		HumanPatterns:     []string{`repurchases? of (common stock|shares)`, `treasury (stock|shares) purchased`},
		Priority:          6,
	},
	{
		CanonicalName: "Dividends paid",
		PrimaryPatterns: []string{
			`^PaymentsOfDividends(CommonStock)?$`,
			`^PaymentsOfDividendsCommonStock$`,
		},
		AlternatePatterns: []string{`^DividendsPaidClassifiedAsFinancingActivities$`},
		HumanPatterns:     []string{`dividends.*paid`, `payments? of dividends`},
		Priority:          6,
	},
	{
		CanonicalName: "Net cash from financing activities",
		PrimaryPatterns: []string{
			`^NetCashProvidedByUsedInFinancingActivities(ContinuingOperations)?$`,
		},
		AlternatePatterns: []string{`^CashFlowsFromUsedInFinancingActivities$`},
		HumanPatterns: []string{
			`net cash (provided by|used in|from|generated by).*financing`,
			`cash (flows? )?from financing activities`,
		},
		StrictEquality: true,
		Priority:       10,
	},
	{
		CanonicalName: "Effect of exchange rate changes",
		PrimaryPatterns: []string{
			`^EffectOfExchangeRateOnCashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents$`,
			`^EffectOfExchangeRateOnCashAndCashEquivalents$`,
		},
		AlternatePatterns: []string{`^EffectOfExchangeRateChangesOnCashAndCashEquivalents$`},
		HumanPatterns:     []string{`effect of (foreign )?exchange rate`},
		Priority:          4,
	},
	{
		CanonicalName: "Net change in cash",
		PrimaryPatterns: []string{
			`^CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalentsPeriodIncreaseDecreaseIncludingExchangeRateEffect$`,
			`^CashAndCashEquivalentsPeriodIncreaseDecrease$`,
		},
		AlternatePatterns: []string{`^IncreaseDecreaseInCashAndCashEquivalents$`},
		HumanPatterns: []string{
			`net (increase|decrease|change) in cash`,
			`(increase|decrease) in cash and cash equivalents`,
		},
		StrictEquality: true,
		Priority:       9,
	},
	{
		CanonicalName: "Cash at end of period",
		PrimaryPatterns: []string{
			`^CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents$`,
			`^CashAndCashEquivalentsAtCarryingValue$`,
		},
		AlternatePatterns: []string{`^CashAndCashEquivalents$`},
		HumanPatterns:     []string{`cash.*end of (period|year)`},
		Priority:          4,
	},
}
