package catalog

// Income statement vocabulary, in output order. Primary patterns target
// us-gaap concept fragments, alternates target ifrs-full, human patterns
// target the printed row labels. Pattern order within a list runs from most
// to least specific.
var incomeEntries = []*Entry{
	{
		CanonicalName: "Total revenue",
		PrimaryPatterns: []string{
			`^Revenues$`,
			`^RevenueFromContractWithCustomer(ExcludingAssessedTax|IncludingAssessedTax)?$`,
			`^SalesRevenue(Net|GoodsNet|ServicesNet)$`,
			`RegulatedAndUnregulatedOperatingRevenue`,
		},
		AlternatePatterns: []string{`^Revenue$`, `^RevenueFromContractsWithCustomers$`},
		HumanPatterns: []string{
			`total (net )?revenues?`,
			`^net sales$`,
			`^net revenues?$`,
			`^revenues?$`,
			`^sales$`,
		},
		StrictEquality: true,
		Priority:       10,
	},
	{
		CanonicalName: "Cost of revenue",
		PrimaryPatterns: []string{
			`^CostOfRevenue$`,
			`^CostOfGoodsAndServicesSold$`,
			`^CostOfGoodsSold$`,
			`^CostOfServices$`,
			`^CostOfSales$`,
		},
		AlternatePatterns: []string{`^CostOfSales$`},
		HumanPatterns: []string{
			`cost of (revenues?|sales|goods sold|products sold|services)`,
			`^cost of products$`,
		},
		Priority: 9,
	},
	{
		CanonicalName:     "Gross profit",
		PrimaryPatterns:   []string{`^GrossProfit$`},
		AlternatePatterns: []string{`^GrossProfit$`},
		HumanPatterns:     []string{`^gross profit$`, `^gross margin$`},
		StrictEquality:    true,
		Priority:          10,
	},
	{
		CanonicalName: "Research and development",
		PrimaryPatterns: []string{
			`^ResearchAndDevelopmentExpense`,
			`ResearchAndDevelopmentInProcess`,
		},
		AlternatePatterns: []string{`^ResearchAndDevelopmentExpense$`},
		HumanPatterns:     []string{`research and development`, `^r\s*&\s*d`},
		Priority:          8,
	},
	{
		CanonicalName: "Selling, general and administrative",
		PrimaryPatterns: []string{
			`^SellingGeneralAndAdministrativeExpense$`,
			`^GeneralAndAdministrativeExpense$`,
			`^SellingAndMarketingExpense$`,
		},
		AlternatePatterns: []string{`AdministrativeExpense$`, `SellingExpense$`},
		HumanPatterns: []string{
			`selling,? general and administrative`,
			`general and administrative`,
			`selling and marketing`,
			`^sg&a`,
		},
		Priority: 8,
	},
	{
		CanonicalName: "Total operating expenses",
		PrimaryPatterns: []string{
			`^OperatingExpenses$`,
			`^CostsAndExpenses$`,
			`^OperatingCostsAndExpenses$`,
		},
		AlternatePatterns: []string{`^OperatingExpense$`},
		HumanPatterns:     []string{`total (operating )?(costs and )?expenses`},
		StrictEquality:    true,
		Priority:          8,
	},
	{
		CanonicalName: "Operating income",
		PrimaryPatterns: []string{
			`^OperatingIncomeLoss$`,
		},
		AlternatePatterns: []string{`^ProfitLossFromOperatingActivities$`},
		HumanPatterns: []string{
			`operating income`,
			`income from operations`,
			`operating profit`,
			`operating loss`,
		},
		StrictEquality: true,
		Priority:       10,
	},
	{
		CanonicalName: "Interest expense",
		PrimaryPatterns: []string{
			`^InterestExpense(Debt)?$`,
			`^InterestAndDebtExpense$`,
		},
		AlternatePatterns: []string{`^FinanceCosts$`, `^InterestExpense$`},
		HumanPatterns:     []string{`interest expense`, `finance costs?`},
		Priority:          7,
	},
	{
		CanonicalName: "Interest income",
		PrimaryPatterns: []string{
			`^InvestmentIncomeInterest$`,
			`^InterestIncomeOperating$`,
			`^InterestAndDividendIncomeOperating$`,
		},
		AlternatePatterns: []string{`^FinanceIncome$`, `^InterestIncome$`},
		HumanPatterns:     []string{`interest (and dividend )?income`, `finance income`},
		Priority:          7,
	},
	{
		CanonicalName: "Other income (expense)",
		PrimaryPatterns: []string{
			`^OtherNonoperatingIncomeExpense$`,
			`^NonoperatingIncomeExpense$`,
			`^OtherOperatingIncomeExpenseNet$`,
		},
		AlternatePatterns: []string{`^OtherIncome$`, `^OtherGainsLosses$`},
		HumanPatterns: []string{
			`other income.*(expense|net)`,
			`other \(expense\) income`,
			`^other,? net$`,
		},
		Priority: 5,
	},
	{
		CanonicalName: "Income before taxes",
		PrimaryPatterns: []string{
			`^IncomeLossFromContinuingOperationsBeforeIncomeTaxes(ExtraordinaryItemsNoncontrollingInterest|MinorityInterestAndIncomeLossFromEquityMethodInvestments)?$`,
			`^IncomeLossFromContinuingOperationsBeforeIncomeTaxesDomestic$`,
		},
		AlternatePatterns: []string{`^ProfitLossBeforeTax$`},
		HumanPatterns: []string{
			`income before (provision for )?(income )?taxes`,
			`earnings before (income )?taxes`,
			`pre-?tax income`,
		},
		Priority: 9,
	},
	{
		CanonicalName: "Income tax expense",
		PrimaryPatterns: []string{
			`^IncomeTaxExpenseBenefit$`,
			`^CurrentIncomeTaxExpenseBenefit$`,
		},
		AlternatePatterns: []string{`^IncomeTaxExpenseContinuingOperations$`, `^TaxExpense`},
		HumanPatterns: []string{
			`(provision|benefit) for income taxes`,
			`income tax (expense|provision|benefit)`,
		},
		Priority: 8,
	},
	{
		CanonicalName: "Net income",
		PrimaryPatterns: []string{
			`^NetIncomeLoss$`,
			`^NetIncomeLossAvailableToCommonStockholdersBasic$`,
			`^ProfitLoss$`,
		},
		AlternatePatterns: []string{`^ProfitLoss$`, `^ProfitLossAttributableToOwnersOfParent$`},
		HumanPatterns:     []string{`^net income`, `^net earnings`, `^net loss`},
		StrictEquality:    true,
		Priority:          10,
	},
	{
		CanonicalName: "Earnings per share basic",
		PrimaryPatterns: []string{
			`^EarningsPerShareBasic$`,
			`^IncomeLossFromContinuingOperationsPerBasicShare$`,
		},
		AlternatePatterns: []string{`^BasicEarningsLossPerShare$`},
		HumanPatterns:     []string{`basic.*per share`, `per share.*basic`, `^basic$`},
		Priority:          6,
	},
	{
		CanonicalName: "Earnings per share diluted",
		PrimaryPatterns: []string{
			`^EarningsPerShareDiluted$`,
			`^IncomeLossFromContinuingOperationsPerDilutedShare$`,
		},
		AlternatePatterns: []string{`^DilutedEarningsLossPerShare$`},
		HumanPatterns:     []string{`diluted.*per share`, `per share.*diluted`, `^diluted$`},
		Priority:          6,
	},
	{
		CanonicalName: "Weighted average shares basic",
		PrimaryPatterns: []string{
			`^WeightedAverageNumberOfSharesOutstandingBasic$`,
			`^WeightedAverageNumberOfShareOutstandingBasic`,
		},
		AlternatePatterns: []string{`^WeightedAverageShares$`},
		HumanPatterns:     []string{`weighted.average.*basic`, `basic.*weighted.average`},
		Priority:          5,
	},
	{
		CanonicalName: "Weighted average shares diluted",
		PrimaryPatterns: []string{
			`^WeightedAverageNumberOfDilutedSharesOutstanding$`,
		},
		AlternatePatterns: []string{`^AdjustedWeightedAverageShares$`},
		HumanPatterns:     []string{`weighted.average.*diluted`, `diluted.*weighted.average`},
		Priority:          5,
	},
}
