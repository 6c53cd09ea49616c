package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert that owns the user conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his portfolio: what he holds, how it is allocated,
			how it performs, and what is moving on the markets.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketWatcher returns an expert grounding answers in live search.
func NewMarketWatcher() *Expert {
	return &Expert{
		Name: "MarketWatcher",
		Description: `This is an expert market watcher,
		very well aware of all the financial products and institutions,
		and of the latest news about the different funds and companies.
		Ask the MarketWatcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets. You can search and find anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns an expert grounded in the user's analyzed portfolio.
// The rendered markdown report becomes part of its system instruction, so
// it answers questions about the actual holdings, allocation and returns.
func NewAnalyst(report string) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is the portfolio Analyst. He knows the user's current holdings,
		their asset allocation, their expense ratios and their performance.
		Ask the Analyst anything about what the user actually owns.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio analyst. Below is the user's current portfolio report.
			Answer questions about it precisely, quoting figures from the report.
			If a question cannot be answered from the report, say so.

			` + report}}},
		},
	}
}
