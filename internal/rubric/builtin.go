package rubric

import "github.com/alexanderramin/caseflow/internal/domain"

// builtinRubrics returns the shipped rubric tables. Behavioral questions
// intentionally have no rubric: scoring them on a fixed dimension grid
// adds noise, so callers degrade to unscored feedback.
func builtinRubrics() []*Config {
	return []*Config{
		profitabilityRubric(),
		marketEntryRubric(),
		marketSizingRubric(),
		mergerAcqRubric(),
		productSenseRubric(),
		executionRubric(),
		strategyRubric(),
	}
}

func profitabilityRubric() *Config {
	return &Config{
		QuestionType: domain.TypeProfitability,
		Dimensions: []Dimension{
			{
				Name: "Structure", Weight: 25,
				Criteria: map[int][]string{
					1: {"Dives into numbers with no framework"},
					3: {"Splits profit into revenue and cost but misses key branches"},
					5: {"Lays out a MECE profit tree up front and navigates it explicitly"},
				},
			},
			{
				Name: "Quantitative Rigor", Weight: 25,
				Criteria: map[int][]string{
					1: {"Arithmetic errors go unnoticed"},
					3: {"Correct math with prompting on sanity checks"},
					5: {"Fast, accurate math with proactive sanity checks and stated units"},
				},
			},
			{
				Name: "Business Judgment", Weight: 20,
				Criteria: map[int][]string{
					1: {"Recites framework branches without tying them to the client"},
					3: {"Reasonable hypotheses but limited industry intuition"},
					5: {"Forms sharp, testable hypotheses grounded in the industry context"},
				},
			},
			{
				Name: "Communication", Weight: 15,
				Criteria: map[int][]string{
					1: {"Rambling, hard to follow"},
					3: {"Clear when prompted to summarize"},
					5: {"Top-down, signposted, concise throughout"},
				},
			},
			{
				Name: "Synthesis", Weight: 15,
				Criteria: map[int][]string{
					1: {"No recommendation or one unsupported by the analysis"},
					3: {"Recommendation follows from analysis but lacks risks or next steps"},
					5: {"Crisp recommendation with quantified impact, risks, and next steps"},
				},
			},
		},
		Examples: []CalibratedExample{
			{
				TranscriptSummary: "Candidate structured profit = revenue - cost, isolated a 12% unit-cost increase in dairy inputs, and recommended renegotiating supplier contracts with a hedging pilot.",
				OverallScore:      4.5,
				Strengths:         []string{"Hypothesis-driven drill-down", "Quantified the recommendation"},
			},
		},
	}
}

func marketEntryRubric() *Config {
	return &Config{
		QuestionType: domain.TypeMarketEntry,
		Dimensions: []Dimension{
			{
				Name: "Market Assessment", Weight: 30,
				Criteria: map[int][]string{
					3: {"Sizes the market but skips growth or concentration"},
					5: {"Sizes the market, assesses growth, margins, and competitive intensity"},
				},
			},
			{
				Name: "Entry Strategy", Weight: 30,
				Criteria: map[int][]string{
					3: {"Names build/buy/partner but compares them superficially"},
					5: {"Evaluates build vs buy vs partner against capabilities and economics"},
				},
			},
			{
				Name: "Risk Analysis", Weight: 20,
				Criteria: map[int][]string{
					3: {"Lists generic risks"},
					5: {"Identifies entry-specific risks with mitigations"},
				},
			},
			{
				Name: "Communication", Weight: 20,
				Criteria: map[int][]string{
					3: {"Mostly organized"},
					5: {"Structured, top-down, decision-oriented"},
				},
			},
		},
	}
}

func marketSizingRubric() *Config {
	return &Config{
		QuestionType: domain.TypeMarketSizing,
		Dimensions: []Dimension{
			{
				Name: "Approach", Weight: 35,
				Criteria: map[int][]string{
					3: {"Picks top-down or bottom-up without justifying the choice"},
					5: {"Chooses and justifies the approach, segments the population sensibly"},
				},
			},
			{
				Name: "Assumptions", Weight: 30,
				Criteria: map[int][]string{
					3: {"Assumptions stated but some implausible"},
					5: {"Every assumption explicit, round, and defensible"},
				},
			},
			{
				Name: "Arithmetic", Weight: 20,
				Criteria: map[int][]string{
					3: {"Minor slips, self-corrected"},
					5: {"Clean mental math with a final sanity check against a known anchor"},
				},
			},
			{
				Name: "Communication", Weight: 15,
				Criteria: map[int][]string{
					3: {"Understandable with effort"},
					5: {"Walks the interviewer through every step unprompted"},
				},
			},
		},
	}
}

func mergerAcqRubric() *Config {
	return &Config{
		QuestionType: domain.TypeMergerAcq,
		Dimensions: []Dimension{
			{
				Name: "Strategic Rationale", Weight: 30,
				Criteria: map[int][]string{
					3: {"Covers either standalone value or synergies, not both"},
					5: {"Assesses standalone value, synergies, and strategic fit as separate questions"},
				},
			},
			{
				Name: "Valuation Logic", Weight: 30,
				Criteria: map[int][]string{
					3: {"Mentions valuation but cannot connect it to the decision"},
					5: {"Frames price vs value explicitly and quantifies synergy impact"},
				},
			},
			{
				Name: "Risk & Integration", Weight: 20,
				Criteria: map[int][]string{
					3: {"Acknowledges integration risk generically"},
					5: {"Surfaces culture, retention, and regulatory risks with mitigations"},
				},
			},
			{
				Name: "Communication", Weight: 20,
				Criteria: map[int][]string{
					3: {"Organized but verbose"},
					5: {"Board-ready synthesis under time pressure"},
				},
			},
		},
	}
}

func productSenseRubric() *Config {
	return &Config{
		QuestionType: domain.TypeProductSense,
		Dimensions: []Dimension{
			{
				Name: "User Empathy", Weight: 25,
				Criteria: map[int][]string{
					1: {"Jumps to solutions without naming a user"},
					3: {"Names segments but personas stay generic"},
					5: {"Segments users crisply and builds a vivid, specific persona"},
				},
			},
			{
				Name: "Problem Prioritization", Weight: 25,
				Criteria: map[int][]string{
					3: {"Prioritizes by gut feel"},
					5: {"Prioritizes with explicit criteria (impact, frequency, underservedness) and defends trade-offs"},
				},
			},
			{
				Name: "Solution Creativity", Weight: 20,
				Criteria: map[int][]string{
					3: {"Incremental feature ideas"},
					5: {"Generates distinct solution directions including at least one non-obvious option"},
				},
			},
			{
				Name: "Metrics Definition", Weight: 15,
				Criteria: map[int][]string{
					3: {"Names vanity metrics"},
					5: {"Defines a north-star metric plus guardrails tied to the chosen problem"},
				},
			},
			{
				Name: "Communication", Weight: 15,
				Criteria: map[int][]string{
					3: {"Needs prompting to summarize"},
					5: {"Narrates the journey from mission to metrics without losing the thread"},
				},
			},
		},
		Examples: []CalibratedExample{
			{
				TranscriptSummary: "Candidate designed a grocery app for seniors: segmented by mobility and tech comfort, prioritized low-vision users, proposed voice-first reordering, north star = weekly completed orders.",
				OverallScore:      4.0,
				Strengths:         []string{"Specific persona", "Metric tied to chosen pain point"},
			},
		},
	}
}

func executionRubric() *Config {
	return &Config{
		QuestionType: domain.TypeExecution,
		Dimensions: []Dimension{
			{
				Name: "Metric Intuition", Weight: 30,
				Criteria: map[int][]string{
					3: {"Understands the metric but not its drivers"},
					5: {"Decomposes the metric into a driver tree before hypothesizing"},
				},
			},
			{
				Name: "Root-Cause Discipline", Weight: 30,
				Criteria: map[int][]string{
					3: {"Tests hypotheses in arbitrary order"},
					5: {"Rules out internal, external, and measurement causes systematically"},
				},
			},
			{
				Name: "Trade-off Judgment", Weight: 20,
				Criteria: map[int][]string{
					3: {"Picks an action without weighing alternatives"},
					5: {"Weighs short-term vs long-term effects and states the decision rule"},
				},
			},
			{
				Name: "Communication", Weight: 20,
				Criteria: map[int][]string{
					3: {"Clear conclusions, weak signposting"},
					5: {"Hypothesis-first narration, crisp status summaries"},
				},
			},
		},
	}
}

func strategyRubric() *Config {
	return &Config{
		QuestionType: domain.TypeStrategy,
		Dimensions: []Dimension{
			{
				Name: "Market Understanding", Weight: 30,
				Criteria: map[int][]string{
					3: {"Describes the market without a competitive lens"},
					5: {"Maps competitors, moats, and ecosystem dynamics accurately"},
				},
			},
			{
				Name: "Strategic Options", Weight: 30,
				Criteria: map[int][]string{
					3: {"One viable option explored deeply, others ignored"},
					5: {"Generates genuinely distinct options and evaluates them against capabilities"},
				},
			},
			{
				Name: "Recommendation", Weight: 20,
				Criteria: map[int][]string{
					3: {"Hedged recommendation"},
					5: {"Takes a clear position with sequencing and success criteria"},
				},
			},
			{
				Name: "Communication", Weight: 20,
				Criteria: map[int][]string{
					3: {"Readable structure"},
					5: {"Executive-level framing throughout"},
				},
			},
		},
	}
}
