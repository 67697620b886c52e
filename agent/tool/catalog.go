package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"github.com/Kaztic/foodiespot-reservation-agent/agent/booking"
	contractx "github.com/Kaztic/foodiespot-reservation-agent/agent/contract"
	"github.com/Kaztic/foodiespot-reservation-agent/agent/directory"
)

const (
	ToolListRestaurants      = "list_restaurants"
	ToolGetRestaurantDetails = "get_restaurant_details"
	ToolCheckAvailability    = "check_availability"
	ToolMakeReservation      = "make_reservation"
)

// DataManager is the surface the tool layer needs from the booking manager.
type DataManager interface {
	Restaurants(c directory.Criteria) []directory.Restaurant
	FindRestaurantByName(name string) (directory.Restaurant, bool)
	CheckAvailability(name, date, timeOfDay string, partySize int) booking.Availability
	MakeReservation(name, date, timeOfDay string, partySize int, userName, userPhone string) booking.BookingResult
}

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// paramSpec and toolSpec describe one tool's callable surface. The schema
// advertised to the model and the executor's dispatch table are both derived
// from the same catalog, so the two cannot drift apart.
type paramSpec struct {
	name     string
	dataType schema.DataType
	desc     string
	required bool
}

type toolSpec struct {
	name   string
	desc   string
	params []paramSpec
}

var catalog = []toolSpec{
	{
		name: ToolListRestaurants,
		desc: "Search for restaurants based on criteria like cuisine, location, or party size.",
		params: []paramSpec{
			{name: "cuisine", dataType: schema.String, desc: "Type of cuisine (e.g., Italian, Japanese, Indian)"},
			{name: "location", dataType: schema.String, desc: "Area or neighborhood (e.g., Downtown, Westside)"},
			{name: "party_size", dataType: schema.Integer, desc: "Number of people in the party"},
			{name: "text", dataType: schema.String, desc: "Additional search text to match against restaurant name or description"},
			{name: "date", dataType: schema.String, desc: "Date for reservation in YYYY-MM-DD format"},
			{name: "time", dataType: schema.String, desc: "Time for reservation in HH:MM format (24-hour)"},
		},
	},
	{
		name: ToolGetRestaurantDetails,
		desc: "Get detailed information about a specific restaurant.",
		params: []paramSpec{
			{name: "restaurant_name", dataType: schema.String, desc: "Name of the restaurant to get details for", required: true},
		},
	},
	{
		name: ToolCheckAvailability,
		desc: "Check if a restaurant has availability for a reservation.",
		params: []paramSpec{
			{name: "restaurant_name", dataType: schema.String, desc: "Name of the restaurant to check availability", required: true},
			{name: "date", dataType: schema.String, desc: "Date for reservation in YYYY-MM-DD format", required: true},
			{name: "time", dataType: schema.String, desc: "Time for reservation in HH:MM format (24-hour)", required: true},
			{name: "party_size", dataType: schema.Integer, desc: "Number of people in the party", required: true},
		},
	},
	{
		name: ToolMakeReservation,
		desc: "Book a reservation at a restaurant.",
		params: []paramSpec{
			{name: "restaurant_name", dataType: schema.String, desc: "Name of the restaurant to book", required: true},
			{name: "date", dataType: schema.String, desc: "Date for reservation in YYYY-MM-DD format", required: true},
			{name: "time", dataType: schema.String, desc: "Time for reservation in HH:MM format (24-hour)", required: true},
			{name: "party_size", dataType: schema.Integer, desc: "Number of people in the party", required: true},
			{name: "user_name", dataType: schema.String, desc: "Name of the person making the reservation", required: true},
			{name: "user_phone", dataType: schema.String, desc: "Contact phone number", required: true},
		},
	},
}

// Infos renders the catalog as the declarative schema advertised to the
// language model.
func Infos() []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(catalog))
	for _, spec := range catalog {
		params := make(map[string]*schema.ParameterInfo, len(spec.params))
		for _, p := range spec.params {
			params[p.name] = &schema.ParameterInfo{
				Type:     p.dataType,
				Desc:     p.desc,
				Required: p.required,
			}
		}
		infos = append(infos, &schema.ToolInfo{
			Name:        spec.name,
			Desc:        spec.desc,
			ParamsOneOf: schema.NewParamsOneOfByParams(params),
		})
	}
	return infos
}

// NewExecutor builds the dispatch function for the four reservation tools.
// Every failure mode is returned as data; nothing raises past this boundary.
func NewExecutor(mgr DataManager) Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		log.Debug().Str("tool", tool).Msg("dispatching tool call")

		switch tool {
		case ToolListRestaurants:
			return contractx.ToolResult{Tool: tool, Result: listRestaurants(mgr, args)}, nil
		case ToolGetRestaurantDetails:
			return contractx.ToolResult{Tool: tool, Result: restaurantDetails(mgr, args)}, nil
		case ToolCheckAvailability:
			return contractx.ToolResult{Tool: tool, Result: checkAvailability(mgr, args)}, nil
		case ToolMakeReservation:
			return contractx.ToolResult{Tool: tool, Result: makeReservation(mgr, args)}, nil
		default:
			return contractx.ToolResult{
				Tool:  tool,
				Error: fmt.Sprintf("Tool '%s' not found.", tool),
			}, nil
		}
	}
}

// Gateway adapts the executor to the contract.ToolGateway interface consumed
// by the conversation loop.
type Gateway struct {
	exec Executor
}

func NewGateway(mgr DataManager) *Gateway {
	return &Gateway{exec: NewExecutor(mgr)}
}

func (g *Gateway) Execute(ctx context.Context, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		res, err := g.exec(ctx, req.Tool, req.Args)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
