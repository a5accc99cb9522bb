package shopify

import (
	"fmt"

	"orderseed/internal/models"
)

// AdminAPI is the slice of the platform API the order generator consumes.
// *Client implements it; tests substitute doubles.
type AdminAPI interface {
	ListCustomers(first int) ([]models.Customer, error)
	ListProducts(first, variantsPerProduct int) ([]models.Product, error)
	CreateDraftOrder(input DraftOrderInput) (*models.DraftOrder, error)
	CompleteDraftOrder(id string, paymentPending bool) (*models.Order, error)
}

var _ AdminAPI = (*Client)(nil)

const listCustomersQuery = `
query ListCustomers($first: Int!) {
  customers(first: $first) {
    edges {
      node {
        id
        firstName
        lastName
        email
        defaultAddress {
          firstName
          lastName
          company
          address1
          address2
          city
          province
          provinceCode
          zip
          country
          countryCode
          phone
        }
      }
    }
  }
}`

const listProductsQuery = `
query ListProducts($first: Int!, $variants: Int!) {
  products(first: $first, sortKey: TITLE) {
    edges {
      node {
        id
        title
        variants(first: $variants) {
          edges {
            node {
              id
              title
              sku
              price
              inventoryQuantity
            }
          }
        }
      }
    }
  }
}`

const createDraftOrderMutation = `
mutation CreateDraftOrder($input: DraftOrderInput!) {
  draftOrderCreate(input: $input) {
    draftOrder {
      id
      name
      totalPrice
    }
    userErrors {
      field
      message
    }
  }
}`

const completeDraftOrderMutation = `
mutation CompleteDraftOrder($id: ID!, $paymentPending: Boolean!) {
  draftOrderComplete(id: $id, paymentPending: $paymentPending) {
    draftOrder {
      id
      order {
        id
        name
        displayFinancialStatus
        displayFulfillmentStatus
      }
    }
    userErrors {
      field
      message
    }
  }
}`

type listCustomersData struct {
	Customers struct {
		Edges []struct {
			Node models.Customer `json:"node"`
		} `json:"edges"`
	} `json:"customers"`
}

// ListCustomers fetches the first page of customers.
func (c *Client) ListCustomers(first int) ([]models.Customer, error) {
	var data listCustomersData
	vars := map[string]any{"first": first}
	if err := c.execute("listCustomers", listCustomersQuery, vars, &data); err != nil {
		return nil, err
	}
	customers := make([]models.Customer, 0, len(data.Customers.Edges))
	for _, edge := range data.Customers.Edges {
		customers = append(customers, edge.Node)
	}
	return customers, nil
}

type productNode struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Variants struct {
		Edges []struct {
			Node models.ProductVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type listProductsData struct {
	Products struct {
		Edges []struct {
			Node productNode `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

// ListProducts fetches the first page of products sorted by title, each with
// up to variantsPerProduct variants.
func (c *Client) ListProducts(first, variantsPerProduct int) ([]models.Product, error) {
	var data listProductsData
	vars := map[string]any{"first": first, "variants": variantsPerProduct}
	if err := c.execute("listProducts", listProductsQuery, vars, &data); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(data.Products.Edges))
	for _, pe := range data.Products.Edges {
		product := models.Product{ID: pe.Node.ID, Title: pe.Node.Title}
		for _, ve := range pe.Node.Variants.Edges {
			product.Variants = append(product.Variants, ve.Node)
		}
		products = append(products, product)
	}
	return products, nil
}

// DraftOrderLineItemInput is one purchased variant on a draft order.
type DraftOrderLineItemInput struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// DraftOrderInput is the payload of the draft order creation mutation.
// Optional fields are dropped from the wire payload when empty.
type DraftOrderInput struct {
	CustomerID      string                    `json:"customerId,omitempty"`
	Note            string                    `json:"note,omitempty"`
	Tags            []string                  `json:"tags,omitempty"`
	LineItems       []DraftOrderLineItemInput `json:"lineItems"`
	ShippingAddress *models.Address           `json:"shippingAddress,omitempty"`
	BillingAddress  *models.Address           `json:"billingAddress,omitempty"`
}

type draftOrderCreateData struct {
	DraftOrderCreate struct {
		DraftOrder *models.DraftOrder `json:"draftOrder"`
		UserErrors []UserError        `json:"userErrors"`
	} `json:"draftOrderCreate"`
}

// CreateDraftOrder opens a draft order. userErrors reported by the platform
// fail the call with an *OrderCreationError.
func (c *Client) CreateDraftOrder(input DraftOrderInput) (*models.DraftOrder, error) {
	var data draftOrderCreateData
	vars := map[string]any{"input": input}
	if err := c.execute("createDraftOrder", createDraftOrderMutation, vars, &data); err != nil {
		return nil, err
	}
	result := data.DraftOrderCreate
	if len(result.UserErrors) > 0 {
		return nil, &OrderCreationError{UserErrors: result.UserErrors}
	}
	if result.DraftOrder == nil || result.DraftOrder.ID == "" {
		return nil, ErrDraftOrderNotReturned
	}
	return result.DraftOrder, nil
}

type draftOrderCompleteData struct {
	DraftOrderComplete struct {
		DraftOrder *struct {
			ID    string        `json:"id"`
			Order *models.Order `json:"order"`
		} `json:"draftOrder"`
		UserErrors []UserError `json:"userErrors"`
	} `json:"draftOrderComplete"`
}

// CompleteDraftOrder turns a draft order into a real order. paymentPending
// controls whether the order is created with payment still owing.
func (c *Client) CompleteDraftOrder(id string, paymentPending bool) (*models.Order, error) {
	var data draftOrderCompleteData
	vars := map[string]any{"id": id, "paymentPending": paymentPending}
	if err := c.execute("completeDraftOrder", completeDraftOrderMutation, vars, &data); err != nil {
		return nil, err
	}
	result := data.DraftOrderComplete
	if len(result.UserErrors) > 0 {
		return nil, &OrderCompletionError{DraftOrderID: id, UserErrors: result.UserErrors}
	}
	if result.DraftOrder == nil || result.DraftOrder.Order == nil {
		return nil, fmt.Errorf("draft order %s: %w", id, ErrOrderNotReturned)
	}
	return result.DraftOrder.Order, nil
}
