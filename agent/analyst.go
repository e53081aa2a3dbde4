package agent

import (
	"context"
	"fmt"

	"divtrack"
	"divtrack/renderer"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation itself.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert skills available from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the dividend histories he tracks:
			when instruments paid, how often they pay, what they are expected to pay next.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Check the tracked instruments first, the user will assume
			you know his tickers.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert that grounds answers in web search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert financial researcher,
		well aware of companies, funds and their dividend policies,
		and of the latest announcements: declarations, cuts, special payouts.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in dividend investing. You can search and find anything
			related to companies, funds, markets and their payout policies. You leverage
			Google Search to ground your assertions, and you know how to relate the
			latest announcements to the user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert that reads the user's tracked histories.
func NewAnalyst(store *divtrack.Store) *Expert {
	lib := []Function{instrumentsFunc(store), historyFunc(store), projectionsFunc(store)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the user's tracked dividend histories.
		He can list the tracked instruments, show the full payment history of one of them,
		and show the projected payment dates.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's tracked dividend histories.
				You know how to use the Tools to extract relevant information:
				  - list of tracked instruments with their cadence and yield
				  - full payment history of one instrument
				  - projected payment dates of one instrument
				You are part of a team of experts; pardon their approximative language
				and figure out which instrument they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// respond builds a function response carrying either an output or an error.
func respond(id, name string, output string, err error) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	fresp.Response["output"] = output
	return fresp
}

// symbolArg extracts the mandatory "symbol" argument.
func symbolArg(args map[string]any) (string, error) {
	raw, ok := args["symbol"]
	if !ok {
		return "", fmt.Errorf("missing argument 'symbol'")
	}
	symbol, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("argument 'symbol' is not a string as expected but %T", raw)
	}
	return symbol, nil
}

var symbolSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The ticker symbol of the instrument, as tracked by the user, e.g. MSFT or BRK.B.",
}

func instrumentsFunc(store *divtrack.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Instruments",
			Description: `Instruments lists all tracked instruments with their payment cadence,
			last payment, next expected payment and trailing yield.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all tracked instruments.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			report, err := divtrack.NewSummaryReport(store)
			if err != nil {
				return respond(id, "Instruments", "", err)
			}
			return respond(id, "Instruments", renderer.SummaryMarkdown(report), nil)
		},
	}
}

func historyFunc(store *divtrack.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History shows every recorded payment, price and projected date of
			one instrument, with the trailing yield of each payment.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"symbol": symbolSchema},
				Required:   []string{"symbol"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the instrument's history.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, err := symbolArg(args)
			if err != nil {
				return respond(id, "History", "", err)
			}
			report, err := divtrack.NewHistoryReport(store, symbol)
			if err != nil {
				return respond(id, "History", "", err)
			}
			return respond(id, "History", renderer.HistoryMarkdown(report), nil)
		},
	}
}

func projectionsFunc(store *divtrack.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Projections",
			Description: `Projections shows the projected future payment dates of one instrument.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"symbol": symbolSchema},
				Required:   []string{"symbol"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of the projected payment dates.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, err := symbolArg(args)
			if err != nil {
				return respond(id, "Projections", "", err)
			}
			report, err := divtrack.NewProjectionReport(store, symbol)
			if err != nil {
				return respond(id, "Projections", "", err)
			}
			return respond(id, "Projections", renderer.ProjectionMarkdown(report), nil)
		},
	}
}
