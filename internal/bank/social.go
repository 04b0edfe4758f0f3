package bank

import "github.com/akoval/mediascope/internal/model"

// Social scale: Strong Progressive (-10) -> Progressive (-7.5) ->
// Moderate Progressive (-5) -> Mild Progressive (-2.5) -> Balanced (0)
// -> Mild Conservative (+2.5) -> Moderate Conservative (+5) ->
// Traditional Conservative (+7.5) -> Strong Traditional (+10).

var socialTopics = []model.Topic{
	{
		ID:        "soc-abortion",
		Name:      "Abortion",
		Dimension: model.DimensionSocial,
		Relevance: "Does this coverage discuss abortion or reproductive rights?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage support unrestricted access to abortion throughout pregnancy?",
				"Does this coverage support abortion rights with some gestational limits, such as viability?",
				"Does this coverage frame abortion access primarily as healthcare under threat?",
				"Does this coverage lean toward abortion rights while acknowledging moral complexity?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage support a complete ban on abortion with no exceptions?",
				"Does this coverage support restricting abortion except for rape, incest, or the life of the mother?",
				"Does this coverage frame abortion primarily as the taking of a life?",
				"Does this coverage lean toward restrictions while acknowledging hard cases?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage present both abortion-rights and pro-life positions without endorsing either?"},
	},
	{
		ID:        "soc-lgbtq",
		Name:      "LGBTQ rights and gender identity",
		Dimension: model.DimensionSocial,
		Relevance: "Does this coverage discuss LGBTQ rights, same-sex marriage, or gender identity?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage support gender-affirming care for minors and full self-identification rights?",
				"Does this coverage advocate broad anti-discrimination protections for gender identity?",
				"Does this coverage treat opposition to LGBTQ rights as bigotry rather than a position?",
				"Does this coverage lean supportive of LGBTQ causes in framing and sourcing?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage advocate recriminalizing or broadly suppressing LGBTQ identities?",
				"Does this coverage oppose same-sex marriage or advocate rolling back recognition?",
				"Does this coverage frame gender identity protections as a threat to children or women?",
				"Does this coverage lean skeptical of gender-identity policies in framing and sourcing?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage report LGBTQ policy disputes with balanced framing and sourcing from both sides?"},
	},
	{
		ID:        "soc-immigration",
		Name:      "Immigration",
		Dimension: model.DimensionSocial,
		Relevance: "Does this coverage discuss immigration, borders, or asylum policy?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage advocate open borders or abolishing immigration enforcement agencies?",
				"Does this coverage support broad amnesty and sharply reduced deportation?",
				"Does this coverage frame immigration primarily through humanitarian benefit?",
				"Does this coverage lean sympathetic to migrants in framing and word choice?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage advocate ending most legal immigration and mass deportation?",
				"Does this coverage support drastic cuts to legal immigration and asylum?",
				"Does this coverage frame immigration primarily as crime, cost, or cultural threat?",
				"Does this coverage lean toward enforcement-first framing and word choice?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage weigh border security and humanitarian concerns without a consistent lean?"},
	},
	{
		ID:        "soc-race",
		Name:      "Race and discrimination",
		Dimension: model.DimensionSocial,
		Relevance: "Does this coverage discuss racism, discrimination, or diversity policy?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage advocate race-based reparations or treat all disparities as proof of systemic racism?",
				"Does this coverage strongly support affirmative action and DEI mandates?",
				"Does this coverage foreground systemic racism as the default explanation for disparities?",
				"Does this coverage lean supportive of diversity initiatives in framing?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage use racist tropes or promote racial identity politics for the majority group?",
				"Does this coverage deny that systemic racism exists or campaign against DEI as such?",
				"Does this coverage frame anti-discrimination efforts primarily as reverse discrimination?",
				"Does this coverage lean skeptical of diversity initiatives in framing?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage report discrimination disputes with evidence from multiple perspectives and no fixed frame?"},
	},
	{
		ID:        "soc-guns",
		Name:      "Gun policy",
		Dimension: model.DimensionSocial,
		Relevance: "Does this coverage discuss firearms, gun control, or gun rights?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage support banning all or most civilian firearms?",
				"Does this coverage support assault-weapons bans, universal background checks, or red-flag laws?",
				"Does this coverage frame gun ownership primarily as a public-health threat?",
				"Does this coverage lean toward gun-control advocates in sourcing and framing?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage support eliminating all gun regulation including background checks?",
				"Does this coverage oppose most gun regulation as unconstitutional?",
				"Does this coverage frame gun ownership primarily as essential liberty under attack?",
				"Does this coverage lean toward gun-rights advocates in sourcing and framing?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage support gun rights with some regulation, treating current law as roughly sufficient?"},
	},
	{
		ID:        "soc-religion",
		Name:      "Religion and public life",
		Dimension: model.DimensionSocial,
		Relevance: "Does this coverage discuss religion in government, schools, or public policy?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage advocate removing religious institutions from public life entirely?",
				"Does this coverage support strict separation of church and state in all public settings?",
				"Does this coverage frame religious influence on policy as inherently regressive?",
				"Does this coverage lean secular in framing religious-liberty disputes?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage advocate laws based explicitly on religious doctrine?",
				"Does this coverage support prayer in public schools or religious displays on government property?",
				"Does this coverage frame secularism as an attack on faith?",
				"Does this coverage lean toward religious-liberty claimants in framing?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage report church-state disputes with both secular and religious positions fairly presented?"},
	},
	{
		ID:        "soc-gender",
		Name:      "Gender roles",
		Dimension: model.DimensionSocial,
		Relevance: "Does this coverage discuss gender roles, feminism, or family structure?",
		Ladders: map[model.Stance][model.LadderSize]model.Question{
			model.StanceLeft: ladder(model.StanceLeft, [model.LadderSize]string{
				"Does this coverage advocate dismantling traditional gender roles entirely?",
				"Does this coverage strongly support equal-pay legislation and workplace discrimination remedies?",
				"Does this coverage treat traditional family structures as inherently oppressive?",
				"Does this coverage lean feminist in framing and word choice?",
			}),
			model.StanceRight: ladder(model.StanceRight, [model.LadderSize]string{
				"Does this coverage argue feminism is harmful or that women should primarily be homemakers?",
				"Does this coverage promote traditional gender roles as natural or socially necessary?",
				"Does this coverage frame changes in family structure as civilizational decline?",
				"Does this coverage lean traditionalist in framing and word choice?",
			}),
		},
		Centrism: model.Question{Text: "Does this coverage report gender-role debates without endorsing either traditional or progressive framings?"},
	},
}
