package bank

import "github.com/akoval/mediascope/internal/model"

// Economic scale: Communism (-10) -> Socialism (-7.5) -> Democratic
// Socialism (-5) -> Regulated Market (-2.5) -> Centrism (0) -> Moderate
// Capitalism (+2.5) -> Classical Liberalism (+5) -> Libertarianism
// (+7.5) -> Laissez-Faire (+10).

var economicTopics = []model.Topic{
	{
		ID:        "econ-property",
		Name:      "Property and ownership",
		Dimension: model.DimensionEconomic,
		Relevance: "Does this coverage discuss property rights, ownership of industry, or the structure of the economy?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage advocate the complete abolition of private property or workers seizing all means of production?",
				"Does this coverage advocate government ownership of major industries such as energy, transportation, or healthcare?",
				"Does this coverage advocate worker ownership or cooperative control of companies?",
				"Does this coverage support antitrust enforcement and breaking up large corporations?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage argue that all government economic functions, including courts and police, should be privatized?",
				"Does this coverage argue that most government functions should be privatized or eliminated?",
				"Does this coverage support broad privatization of government services?",
				"Does this coverage favor private enterprise over public programs where both could work?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage support a mixed economy with both private enterprise and public programs, case by case?"},
	},
	{
		ID:        "econ-regulation",
		Name:      "Markets and regulation",
		Dimension: model.DimensionEconomic,
		Relevance: "Does this coverage discuss market regulation, economic planning, or government intervention in the economy?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage support replacing market mechanisms with central economic planning?",
				"Does this coverage argue that the profit motive is inherently exploitative and should be eliminated?",
				"Does this coverage support large-scale government direction of the economy, such as a Green New Deal?",
				"Does this coverage support moderate financial regulation and consumer protection?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage argue that all economic regulation is illegitimate coercion?",
				"Does this coverage argue that government intervention in markets causes more harm than good in nearly all cases?",
				"Does this coverage support significantly reducing regulation on business?",
				"Does this coverage argue that markets work well but need modest oversight?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage endorse both market solutions and targeted intervention depending on the issue, without ideological commitment?"},
	},
	{
		ID:        "econ-taxation",
		Name:      "Taxation and redistribution",
		Dimension: model.DimensionEconomic,
		Relevance: "Does this coverage discuss taxation, wealth distribution, or fiscal redistribution?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage support distribution by need rather than by work or ownership?",
				"Does this coverage advocate confiscatory wealth taxes intended to eliminate large private fortunes?",
				"Does this coverage call for sharply higher taxes on the wealthy, such as a 70%+ top marginal rate?",
				"Does this coverage support mildly more progressive taxation within the current system?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage argue that taxation is inherently theft regardless of purpose?",
				"Does this coverage advocate abolishing the income tax entirely?",
				"Does this coverage support broad tax cuts as the primary tool of economic policy?",
				"Does this coverage support reducing corporate taxes to stimulate growth?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage treat tax policy pragmatically, weighing revenue needs against growth without a fixed position?"},
	},
	{
		ID:        "econ-welfare",
		Name:      "Welfare and public services",
		Dimension: model.DimensionEconomic,
		Relevance: "Does this coverage discuss healthcare, education funding, or social safety-net programs?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage advocate abolishing private provision of healthcare and education entirely?",
				"Does this coverage support universal healthcare as a government-provided right, such as single-payer?",
				"Does this coverage advocate tuition-free public college or broad student debt cancellation?",
				"Does this coverage support maintaining existing social insurance programs such as Social Security and Medicare?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage advocate eliminating all public welfare programs?",
				"Does this coverage advocate fully privatizing social insurance such as Social Security?",
				"Does this coverage support substantial cuts to safety-net spending?",
				"Does this coverage favor means-testing or work requirements over universal benefits?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage weigh safety-net costs and benefits case by case without a general position on the welfare state?"},
	},
	{
		ID:        "econ-labor",
		Name:      "Labor and wages",
		Dimension: model.DimensionEconomic,
		Relevance: "Does this coverage discuss unions, wages, or workplace regulation?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage call for worker control of workplaces through revolutionary or compulsory means?",
				"Does this coverage advocate sector-wide mandatory collective bargaining or co-determination by law?",
				"Does this coverage support a significantly higher national minimum wage, such as doubling it?",
				"Does this coverage support existing union rights and modest minimum wage increases?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage advocate banning labor unions outright?",
				"Does this coverage support eliminating the minimum wage entirely?",
				"Does this coverage support right-to-work laws and rolling back union protections?",
				"Does this coverage argue wages should be set by markets with only limited floor protections?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage present labor disputes neutrally, giving employer and union positions equal standing?"},
	},
	{
		ID:        "econ-trade",
		Name:      "Trade and globalization",
		Dimension: model.DimensionEconomic,
		Relevance: "Does this coverage discuss international trade, tariffs, or globalization?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage advocate abolishing global trade as inherently imperialist exploitation?",
				"Does this coverage call for state control of imports and exports?",
				"Does this coverage oppose free-trade agreements primarily on labor and environmental grounds?",
				"Does this coverage support trade with strong protections for domestic workers?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage advocate unilateral abolition of all tariffs and trade rules?",
				"Does this coverage argue any trade restriction is illegitimate interference in voluntary exchange?",
				"Does this coverage support free trade with minimal exceptions?",
				"Does this coverage advocate free trade with some protections for strategic industries?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage evaluate trade deals case by case, citing both gains and costs?"},
	},
	{
		ID:        "econ-monetary",
		Name:      "Monetary and fiscal policy",
		Dimension: model.DimensionEconomic,
		Relevance: "Does this coverage discuss central banking, inflation policy, or government stimulus?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage advocate direct state allocation of credit and abolition of private banking?",
				"Does this coverage support unlimited deficit spending for social programs, e.g. strong MMT positions?",
				"Does this coverage call for the central bank to prioritize employment and climate over inflation?",
				"Does this coverage support Keynesian stimulus during recessions?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage advocate abolishing central banking entirely in favor of private money?",
				"Does this coverage advocate abolishing the Federal Reserve or returning to the gold standard?",
				"Does this coverage argue stimulus spending is almost always counterproductive?",
				"Does this coverage favor fiscal restraint and balanced budgets as a default?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage report monetary policy debates without taking a side on the framework itself?"},
	},
}
