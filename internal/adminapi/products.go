package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/beautyfind/beautyfind/internal/catalog"
	"github.com/beautyfind/beautyfind/internal/webserver"
)

// registerProductRoutes registers the catalog query endpoints.
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/trending", listTrending)
	webserver.ApiGET("/products/sale", listOnSale)
	webserver.ApiGET("/products/search", searchProducts)
	webserver.ApiGET("/products/batch", getProductsBatch)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiGET("/products/:id/similar", getSimilarProducts)
	webserver.ApiGET("/products/:id/price-history", getPriceHistory)
	webserver.ApiGET("/products/:id/compare", comparePrices)
	webserver.ApiGET("/products/:id/retailers", getRetailerInfo)
	webserver.ApiPOST("/products/submit", submitProductURL)
	webserver.ApiGET("/categories", listCategories)
	webserver.ApiGET("/categories/:category/products", listByCategory)
	webserver.ApiGET("/brands", listBrands)
	webserver.ApiGET("/brands/:brand/products", listByBrand)
	webserver.ApiGET("/retailers", listRetailers)
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)
	filters := catalog.Filters{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Brand:    strings.TrimSpace(c.QueryParam("brand")),
		Price:    strings.TrimSpace(c.QueryParam("price")),
		Search:   strings.TrimSpace(c.QueryParam("search")),
	}
	sortKey := strings.TrimSpace(c.QueryParam("sort"))

	eng := GetApp(c).Catalog()
	rows := eng.FilterAndSort(filters, sortKey, page, pageSize)
	return paged(c, rows, int64(eng.Count(filters)), page, pageSize)
}

func getProduct(c echo.Context) error {
	p := GetApp(c).Catalog().ByID(c.Param("id"))
	if p == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

func searchProducts(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Query parameter q is required", nil)
	}
	return ok(c, GetApp(c).Catalog().Search(q))
}

// getProductsBatch resolves a comma-separated id list, used by the wishlist
// and owned-products views.
func getProductsBatch(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("ids"))
	if raw == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Query parameter ids is required", nil)
	}
	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ok(c, GetApp(c).Catalog().ByIDs(ids))
}

func getSimilarProducts(c echo.Context) error {
	return ok(c, GetApp(c).Catalog().SimilarTo(c.Param("id"), parseLimit(c, 4)))
}

func listTrending(c echo.Context) error {
	return ok(c, GetApp(c).Catalog().Trending(parseLimit(c, 8)))
}

func listOnSale(c echo.Context) error {
	return ok(c, GetApp(c).Catalog().OnSale(parseLimit(c, 12)))
}

func getPriceHistory(c echo.Context) error {
	h := GetApp(c).Catalog().PriceHistory(c.Param("id"))
	if h == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, h)
}

func comparePrices(c echo.Context) error {
	cmp := GetApp(c).Catalog().ComparePrices(c.Param("id"))
	if cmp == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found or has no retailer offers", nil)
	}
	return ok(c, cmp)
}

func getRetailerInfo(c echo.Context) error {
	return ok(c, GetApp(c).Catalog().RetailerInfo(c.Param("id")))
}

type submitPayload struct {
	URL string `json:"url"`
}

func submitProductURL(c echo.Context) error {
	var payload submitPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse submission", err.Error())
	}

	a := GetApp(c)
	submittedBy := ""
	if u := a.Sessions().CurrentUser(); u != nil {
		submittedBy = u.Email
	}

	receipt, err := a.Submitter().SubmitByURL(c.Request().Context(), payload.URL, submittedBy)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, receipt)
}

func listCategories(c echo.Context) error {
	return ok(c, GetApp(c).Catalog().CategoryOptions())
}

func listByCategory(c echo.Context) error {
	return ok(c, GetApp(c).Catalog().ByCategory(c.Param("category"), parseLimit(c, 12)))
}

func listBrands(c echo.Context) error {
	return ok(c, GetApp(c).Catalog().BrandOptions())
}

func listByBrand(c echo.Context) error {
	return ok(c, GetApp(c).Catalog().ByBrand(c.Param("brand"), parseLimit(c, 12)))
}

func listRetailers(c echo.Context) error {
	return ok(c, catalog.SupportedRetailers)
}
