package agent

import (
	"context"
	"encoding/json"
	"fmt"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/docs"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and of solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			The user comes to understand and improve their personal finances: budget, debts,
			savings, investments and their financial health score, the Nauta Index.
			Never invent a figure: ask the Analyst. Answer in the user's language, in markdown,
			and end with one or two concrete next steps.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewEconomist returns an expert grounded on Google Search, for rates, products and news.
func NewEconomist(model string) *Expert {
	return &Expert{
		Name: "Economist",
		Description: `An economist aware of financial products, interest rates, inflation and
		the latest economic news. Ask the Economist for recent or general information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an economist. Use Google Search to ground your assertions: interest rates,
			inflation, savings and retirement products, insurance and the latest news.
			Relate them to the question you are asked.
			`}}},
		},
	}
}

// Books gives the analyst access to the user's data.
type Books struct {
	Store    finanzas.Store
	Conv     finanzas.Converter
	Currency string
}

func (b Books) load() (finanzas.Data, error) {
	data, err := finanzas.LoadData(b.Store)
	if err != nil {
		return finanzas.Data{}, fmt.Errorf("could not load data: %w", err)
	}
	return data, nil
}

// NewAnalyst returns an expert answering with figures computed from books.
func NewAnalyst(model string, books Books) *Expert {
	lib := AnalystFunctions(books)
	return &Expert{
		Name: "Analyst",
		Description: `The Analyst reads the user's budget, debts, savings goals and investments.
		It computes the Nauta Index, net worth, ratios, insights, month-over-month spending
		and a twelve month cashflow projection.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst in charge of the user's personal finances.
			Use the Tools to compute figures, never compute them yourself. All amounts are in
			the user's display currency. Read the documentation tool to explain how a figure
			is computed.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// AnalystFunctions returns the tools of the analyst.
func AnalystFunctions(books Books) []*Func {
	noArgs := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
	dateArg := func(description string) *genai.Schema {
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date": {
					Type:        genai.TypeString,
					Description: description + " Format YYYY-MM-DD, or relative like -1m. Today is the default.",
				},
			},
		}
	}
	cur := books.Currency

	return []*Func{
		books.tool("financial_health",
			"Computes the Nauta Index: a 0-100 financial health score with its five components.",
			noArgs, func(d finanzas.Data, _ finanzas.Date) any {
				return finanzas.CalculateNautaIndex(d, books.Conv, cur)
			}),
		books.tool("net_worth",
			"Computes the net worth: savings plus investments minus debts.",
			noArgs, func(d finanzas.Data, _ finanzas.Date) any {
				return finanzas.CalculateNetWorth(d, books.Conv, cur)
			}),
		books.tool("insights",
			"Lists advice about overspending, savings rate and toxic debts, most urgent first.",
			noArgs, func(d finanzas.Data, _ finanzas.Date) any {
				return finanzas.GenerateInsights(d, books.Conv, cur)
			}),
		books.tool("cashflow_projection",
			"Projects income, expenses, debt payments and the cumulative balance over twelve months.",
			dateArg("The first month of the projection."), func(d finanzas.Data, on finanzas.Date) any {
				return finanzas.ProjectCashflow(d.Categories, d.Debts, d.Ynab, books.Conv, cur, on)
			}),
		books.tool("ratios",
			"Computes debt-to-income, savings rate, debt service, emergency fund months and an investment summary.",
			noArgs, func(d finanzas.Data, _ finanzas.Date) any {
				return finanzas.CalculateRatios(d, books.Conv, cur)
			}),
		books.tool("compare_months",
			"Compares the transactions of a month with the previous month.",
			dateArg("A day in the month to compare."), func(d finanzas.Data, on finanzas.Date) any {
				return finanzas.CompareWithPreviousMonth(d.Transactions, books.Conv, cur, on)
			}),
		documentation,
	}
}

// tool declares a function computing a result from the books, returned as JSON.
func (b Books) tool(name, description string, params *genai.Schema, compute func(finanzas.Data, finanzas.Date) any) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  params,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The result as JSON. Amounts are objects with an amount and a currency.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return failure(id, name, err)
			}
			data, err := b.load()
			if err != nil {
				return failure(id, name, err)
			}
			raw, err := json.Marshal(compute(data, on))
			if err != nil {
				return failure(id, name, fmt.Errorf("cannot encode result: %w", err))
			}
			return success(id, name, string(raw))
		},
	}
}

var documentation = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "documentation",
		Description: "Returns the documentation of a topic: " + topicList() + ".",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {Type: genai.TypeString, Description: "The topic name."},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{Type: genai.TypeString, Description: "The topic, in markdown."},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		topic, _ := args["topic"].(string)
		content, err := docs.GetTopic(topic)
		if err != nil {
			return failure(id, "documentation", err)
		}
		return success(id, "documentation", content)
	},
}

func topicList() string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return "none"
	}
	return fmt.Sprint(topics)
}

func parseDate(args map[string]any) (finanzas.Date, error) {
	idate, ok := args["date"]
	if !ok {
		return finanzas.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return finanzas.Date{}, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	on, err := finanzas.ParseDate(sdate)
	if err != nil {
		return finanzas.Date{}, fmt.Errorf("argument 'date' must be a valid date: %w", err)
	}
	return on, nil
}
