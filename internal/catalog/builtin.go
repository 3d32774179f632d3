package catalog

import "github.com/alexanderramin/caseflow/internal/domain"

// builtinQuestions returns the shipped question bank.
func builtinQuestions() []*domain.Question {
	return []*domain.Question{
		{
			ID:          "cons-prof-coffee",
			Track:       domain.TrackConsulting,
			Type:        domain.TypeProfitability,
			Title:       "Declining margins at a coffee chain",
			Description: "Your client is a national coffee chain with 400 stores. Revenue grew 5% last year, but operating profit fell 20%. The CEO wants to know why and what to do about it.",
			Difficulty:  domain.DifficultyMedium,
			Company:     "McKinsey",
		},
		{
			ID:          "cons-prof-airline",
			Track:       domain.TrackConsulting,
			Type:        domain.TypeProfitability,
			Title:       "Regional airline losing money on short-haul",
			Description: "A regional airline is profitable overall but loses money on every short-haul route under 300 miles. The board wants a turnaround plan or an exit recommendation.",
			Difficulty:  domain.DifficultyHard,
			Company:     "Bain",
		},
		{
			ID:          "cons-entry-evcharge",
			Track:       domain.TrackConsulting,
			Type:        domain.TypeMarketEntry,
			Title:       "Utility entering EV charging",
			Description: "A mid-size electric utility is considering entering the public EV-charging market in its service territory. Should it enter, and if so, how?",
			Difficulty:  domain.DifficultyMedium,
			Company:     "BCG",
		},
		{
			ID:          "cons-size-umbrellas",
			Track:       domain.TrackConsulting,
			Type:        domain.TypeMarketSizing,
			Title:       "Annual umbrella sales in the UK",
			Description: "Estimate the number of umbrellas sold in the United Kingdom each year. Walk through your approach out loud.",
			Difficulty:  domain.DifficultyEasy,
			Company:     "",
		},
		{
			ID:          "cons-ma-grocer",
			Track:       domain.TrackConsulting,
			Type:        domain.TypeMergerAcq,
			Title:       "Grocery chain acquiring a meal-kit startup",
			Description: "A top-3 grocery chain is evaluating the acquisition of a meal-kit delivery startup for $800M. Should they proceed?",
			Difficulty:  domain.DifficultyHard,
			Company:     "McKinsey",
		},
		{
			ID:          "pm-sense-seniors",
			Track:       domain.TrackProductManagement,
			Type:        domain.TypeProductSense,
			Title:       "Design a grocery product for seniors",
			Description: "Design a grocery shopping product for people over 70. Assume you are a PM at a large e-commerce company.",
			Difficulty:  domain.DifficultyMedium,
			Company:     "Google",
		},
		{
			ID:          "pm-sense-commute",
			Track:       domain.TrackProductManagement,
			Type:        domain.TypeProductSense,
			Title:       "Improve the daily commute",
			Description: "Your company wants to improve the daily commute experience for urban workers. Propose a product.",
			Difficulty:  domain.DifficultyMedium,
			Company:     "Meta",
		},
		{
			ID:          "pm-exec-dau-drop",
			Track:       domain.TrackProductManagement,
			Type:        domain.TypeExecution,
			Title:       "DAU dropped 8% week over week",
			Description: "You are the PM for a photo-sharing app. Daily active users dropped 8% week over week. Diagnose the drop and decide what to do.",
			Difficulty:  domain.DifficultyMedium,
			Company:     "Meta",
		},
		{
			ID:          "pm-strat-maps",
			Track:       domain.TrackProductManagement,
			Type:        domain.TypeStrategy,
			Title:       "Should a maps product enter in-car navigation?",
			Description: "You lead strategy for a consumer maps product. Automakers are shipping their own navigation systems. Should you build an embedded in-car offering?",
			Difficulty:  domain.DifficultyHard,
			Company:     "Google",
		},
		{
			ID:          "pm-behav-conflict",
			Track:       domain.TrackProductManagement,
			Type:        domain.TypeBehavioral,
			Title:       "Tell me about a conflict with engineering",
			Description: "Describe a time you disagreed with your engineering lead about scope. What did you do, and what happened?",
			Difficulty:  domain.DifficultyEasy,
			Company:     "",
		},
	}
}
