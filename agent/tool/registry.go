package tool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/nileshdh/restaurant-agent/agent/contract"
	storex "github.com/nileshdh/restaurant-agent/agent/store"
)

const (
	ToolLookupMenu      = "lookup_menu"
	ToolCheckFoodStock  = "check_food_stock"
	ToolGetOrderStatus  = "get_order_status"
	ToolPlaceOrder      = "place_order"
	ToolSearchFAQs      = "search_faqs"
	ToolUpdateFoodStock = "update_food_stock"
)

// Registry binds the fixed set of restaurant tools to a record store. Every
// handler returns a user-facing string and never an error; failures are
// translated in place so the conversation loop can feed them back to the
// model as ordinary tool results.
type Registry struct {
	store storex.Store
	now   func() time.Time
}

type Option func(*Registry)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

func NewRegistry(st storex.Store, opts ...Option) (*Registry, error) {
	if st == nil {
		return nil, errors.New("record store is required")
	}
	r := &Registry{
		store: st,
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Call dispatches one tool invocation. The only error it can return is
// contract.ErrUnknownTool; everything else is absorbed by the handlers.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	switch name {
	case ToolLookupMenu:
		return r.lookupMenu(ctx, args), nil
	case ToolCheckFoodStock:
		return r.checkFoodStock(ctx, args), nil
	case ToolGetOrderStatus:
		return r.getOrderStatus(ctx, args), nil
	case ToolPlaceOrder:
		return r.placeOrder(ctx, args), nil
	case ToolSearchFAQs:
		return r.searchFAQs(ctx, args), nil
	case ToolUpdateFoodStock:
		return r.updateFoodStock(ctx, args), nil
	default:
		return "", fmt.Errorf("%w: %s", contractx.ErrUnknownTool, name)
	}
}

// Infos declares the tool schemas advertised to the chat model.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolLookupMenu,
			Desc: "Look up menu items with names and prices (INR). Optionally filter by category.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category": {Type: schema.String, Desc: "Optional category to filter by; omit for the full menu"},
			}),
		},
		{
			Name: ToolCheckFoodStock,
			Desc: "Check food stock availability, quantities, and prices.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"item_name": {Type: schema.String, Desc: "Optional item name to check; omit for all stocks"},
			}),
		},
		{
			Name: ToolGetOrderStatus,
			Desc: "Get order information, optionally for one order id or one status.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_id":      {Type: schema.String, Desc: "Optional order ID to look up, e.g. ORD-001"},
				"status_filter": {Type: schema.String, Desc: "Optional status to filter orders (Pending, Completed, Cancelled)"},
			}),
		},
		{
			Name: ToolPlaceOrder,
			Desc: "Place a new customer order.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_name": {Type: schema.String, Desc: "Name of the customer", Required: true},
				"items":         {Type: schema.String, Desc: "Description of the ordered items", Required: true},
				"total":         {Type: schema.Number, Desc: "Total price of the order in INR", Required: true},
			}),
		},
		{
			Name: ToolSearchFAQs,
			Desc: "Search restaurant FAQs by keyword and/or category.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query":    {Type: schema.String, Desc: "Optional search term to find in questions or answers"},
				"category": {Type: schema.String, Desc: "Optional category to filter by (General, Menu, Orders, ...)"},
			}),
		},
		{
			Name: ToolUpdateFoodStock,
			Desc: "Update the quantity of a stock item (management only).",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"item_name":    {Type: schema.String, Desc: "Exact name of the item to update", Required: true},
				"new_quantity": {Type: schema.Integer, Desc: "New quantity value", Required: true},
			}),
		},
	}
}
