package shopify_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderseed/internal/models"
	"orderseed/internal/shopify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphqlCall is one captured request to the stub platform.
type graphqlCall struct {
	Header    http.Header
	Query     string
	Variables map[string]any
}

// newStub starts a platform stub answering every request with body, and
// returns a client pointed at it plus the capture slot for the last call.
func newStub(t *testing.T, status int, body string) (*shopify.Client, *graphqlCall) {
	t.Helper()
	call := &graphqlCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.Unmarshal(payload, &req))

		call.Header = r.Header.Clone()
		call.Query = req.Query
		call.Variables = req.Variables

		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := shopify.NewClient(shopify.Config{
		AccessToken: "test-token",
		Endpoint:    srv.URL,
	})
	return client, call
}

func TestClientSendsHeadersAndVariables(t *testing.T) {
	client, call := newStub(t, http.StatusOK, `{"data":{"customers":{"edges":[]}}}`)

	_, err := client.ListCustomers(25)
	require.NoError(t, err)

	assert.Equal(t, "application/json", call.Header.Get("Content-Type"))
	assert.Equal(t, "test-token", call.Header.Get("X-Shopify-Access-Token"))
	assert.Contains(t, call.Query, "customers(first: $first)")
	assert.Equal(t, float64(25), call.Variables["first"])
}

func TestListCustomersDecodesConnection(t *testing.T) {
	client, _ := newStub(t, http.StatusOK, `{
		"data": {
			"customers": {
				"edges": [
					{"node": {
						"id": "gid://shopify/Customer/1",
						"firstName": "Ada",
						"lastName": "Lovelace",
						"email": "ada@example.com",
						"defaultAddress": {
							"address1": "42 Real Street",
							"city": "Portland",
							"province": "Oregon",
							"provinceCode": "OR",
							"zip": "97201",
							"country": "United States",
							"countryCode": "US"
						}
					}},
					{"node": {
						"id": "gid://shopify/Customer/2",
						"firstName": "Grace",
						"lastName": "Hopper",
						"email": "grace@example.com",
						"defaultAddress": null
					}}
				]
			}
		}
	}`)

	customers, err := client.ListCustomers(25)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	assert.Equal(t, "gid://shopify/Customer/1", customers[0].ID)
	assert.Equal(t, "Ada Lovelace", customers[0].DisplayName())
	require.NotNil(t, customers[0].DefaultAddress)
	assert.Equal(t, "Portland", customers[0].DefaultAddress.City)

	assert.Nil(t, customers[1].DefaultAddress)
}

func TestListProductsDecodesVariants(t *testing.T) {
	client, call := newStub(t, http.StatusOK, `{
		"data": {
			"products": {
				"edges": [
					{"node": {
						"id": "gid://shopify/Product/10",
						"title": "Socks",
						"variants": {
							"edges": [
								{"node": {"id": "gid://shopify/ProductVariant/100", "title": "S", "sku": "SOCK-S", "price": "9.50", "inventoryQuantity": 3}},
								{"node": {"id": "gid://shopify/ProductVariant/101", "title": "M", "sku": "SOCK-M", "price": "9.50", "inventoryQuantity": 0}}
							]
						}
					}}
				]
			}
		}
	}`)

	products, err := client.ListProducts(25, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "Socks", products[0].Title)
	require.Len(t, products[0].Variants, 2)
	assert.Equal(t, "SOCK-S", products[0].Variants[0].SKU)
	assert.Equal(t, 3, products[0].Variants[0].InventoryQuantity)
	assert.False(t, products[0].Variants[1].InStock())

	assert.Contains(t, call.Query, "sortKey: TITLE")
	assert.Equal(t, float64(5), call.Variables["variants"])
}

func TestTransportErrorOnHTTPFailure(t *testing.T) {
	client, _ := newStub(t, http.StatusInternalServerError, `upstream exploded`)

	_, err := client.ListCustomers(25)
	var te *shopify.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Contains(t, te.Error(), "HTTP 500")
	assert.Contains(t, te.Error(), "upstream exploded")
}

func TestTransportErrorOnConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close() // nothing listens there anymore

	client := shopify.NewClient(shopify.Config{AccessToken: "t", Endpoint: endpoint})

	_, err := client.ListProducts(25, 5)
	var te *shopify.TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
}

func TestTransportErrorOnMalformedBody(t *testing.T) {
	client, _ := newStub(t, http.StatusOK, `<html>definitely not graphql</html>`)

	_, err := client.ListCustomers(25)
	var te *shopify.TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Error(), "failed to decode response")
}

func TestAPIErrorOnGraphQLEnvelope(t *testing.T) {
	client, _ := newStub(t, http.StatusOK, `{"errors":[{"message":"Throttled"},{"message":"Field 'nope' doesn't exist"}]}`)

	_, err := client.ListCustomers(25)
	var ae *shopify.APIError
	require.ErrorAs(t, err, &ae)
	assert.Len(t, ae.Errors, 2)
	assert.Contains(t, ae.Error(), "Throttled")
}

func TestCreateDraftOrderSuccess(t *testing.T) {
	client, call := newStub(t, http.StatusOK, `{
		"data": {
			"draftOrderCreate": {
				"draftOrder": {"id": "gid://shopify/DraftOrder/7", "name": "#D7", "totalPrice": "9.50"},
				"userErrors": []
			}
		}
	}`)

	draft, err := client.CreateDraftOrder(shopify.DraftOrderInput{
		CustomerID: "gid://shopify/Customer/1",
		Tags:       []string{"orderseed"},
		LineItems: []shopify.DraftOrderLineItemInput{
			{VariantID: "gid://shopify/ProductVariant/100", Quantity: 1},
		},
		ShippingAddress: &models.Address{City: "Portland"},
		BillingAddress:  &models.Address{City: "Portland"},
	})
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/DraftOrder/7", draft.ID)
	assert.Equal(t, "#D7", draft.Name)
	assert.Equal(t, "9.50", draft.TotalPrice)

	// The mutation input travels inside the variables object.
	input, ok := call.Variables["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "gid://shopify/Customer/1", input["customerId"])
	lineItems, ok := input["lineItems"].([]any)
	require.True(t, ok)
	require.Len(t, lineItems, 1)
	item := lineItems[0].(map[string]any)
	assert.Equal(t, float64(1), item["quantity"])
}

func TestCreateDraftOrderUserErrors(t *testing.T) {
	client, _ := newStub(t, http.StatusOK, `{
		"data": {
			"draftOrderCreate": {
				"draftOrder": null,
				"userErrors": [{"field": ["input", "lineItems"], "message": "Line items cannot be empty"}]
			}
		}
	}`)

	_, err := client.CreateDraftOrder(shopify.DraftOrderInput{})
	var ce *shopify.OrderCreationError
	require.ErrorAs(t, err, &ce)
	require.Len(t, ce.UserErrors, 1)
	assert.Equal(t, []string{"input", "lineItems"}, ce.UserErrors[0].Field)
	assert.Contains(t, ce.Error(), "input.lineItems: Line items cannot be empty")
}

func TestCreateDraftOrderMissingDraft(t *testing.T) {
	client, _ := newStub(t, http.StatusOK, `{"data":{"draftOrderCreate":{"draftOrder":null,"userErrors":[]}}}`)

	_, err := client.CreateDraftOrder(shopify.DraftOrderInput{})
	assert.ErrorIs(t, err, shopify.ErrDraftOrderNotReturned)
}

func TestCompleteDraftOrderSuccess(t *testing.T) {
	client, call := newStub(t, http.StatusOK, `{
		"data": {
			"draftOrderComplete": {
				"draftOrder": {
					"id": "gid://shopify/DraftOrder/7",
					"order": {
						"id": "gid://shopify/Order/1001",
						"name": "#1001",
						"displayFinancialStatus": "PENDING",
						"displayFulfillmentStatus": "UNFULFILLED"
					}
				},
				"userErrors": []
			}
		}
	}`)

	order, err := client.CompleteDraftOrder("gid://shopify/DraftOrder/7", true)
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Order/1001", order.ID)
	assert.Equal(t, "#1001", order.Name)
	assert.Equal(t, "PENDING", order.FinancialStatus)
	assert.Equal(t, "UNFULFILLED", order.FulfillmentStatus)

	assert.Equal(t, "gid://shopify/DraftOrder/7", call.Variables["id"])
	assert.Equal(t, true, call.Variables["paymentPending"])
}

func TestCompleteDraftOrderUserErrors(t *testing.T) {
	client, _ := newStub(t, http.StatusOK, `{
		"data": {
			"draftOrderComplete": {
				"draftOrder": null,
				"userErrors": [{"field": ["id"], "message": "Draft order is already completed"}]
			}
		}
	}`)

	_, err := client.CompleteDraftOrder("gid://shopify/DraftOrder/7", false)
	var ce *shopify.OrderCompletionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "gid://shopify/DraftOrder/7", ce.DraftOrderID)
	assert.Contains(t, ce.Error(), "already completed")
}

func TestCompleteDraftOrderMissingOrder(t *testing.T) {
	// The platform claims success but returns no order object. This must be
	// surfaced as a typed failure, never a nil dereference.
	client, _ := newStub(t, http.StatusOK, `{
		"data": {
			"draftOrderComplete": {
				"draftOrder": {"id": "gid://shopify/DraftOrder/7", "order": null},
				"userErrors": []
			}
		}
	}`)

	_, err := client.CompleteDraftOrder("gid://shopify/DraftOrder/7", false)
	assert.ErrorIs(t, err, shopify.ErrOrderNotReturned)
	assert.Contains(t, err.Error(), "gid://shopify/DraftOrder/7")
}
