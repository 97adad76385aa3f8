package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zengzengppp/Voice-order-generator/internal/ai"
	"github.com/zengzengppp/Voice-order-generator/internal/app"
	"github.com/zengzengppp/Voice-order-generator/internal/customer"
	"github.com/zengzengppp/Voice-order-generator/internal/httpx"
	"github.com/zengzengppp/Voice-order-generator/internal/order"
	"github.com/zengzengppp/Voice-order-generator/internal/report"
)

// processOrderHandler is the stateless relay: it forwards the utterance and
// the caller's current items to the model and returns the revised list
// without touching any draft.
func processOrderHandler(n app.Normalizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProcessOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid json body")
			return
		}
		items, err := n.Normalize(c.Request.Context(), req.CurrentItems, req.Text)
		if err != nil {
			if errors.Is(err, ai.ErrEmptyInput) {
				httpx.Error(c, http.StatusBadRequest, "text is required")
				return
			}
			var ue *ai.UpstreamError
			if errors.As(err, &ue) {
				httpx.Error(c, http.StatusInternalServerError, ue.Error())
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "failed to process order text")
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func startDraftHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartDraftRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CustomerID == "" {
			httpx.Error(c, http.StatusBadRequest, "customer_id is required")
			return
		}
		d, err := a.StartDraft(req.CustomerID)
		if err != nil {
			draftError(c, err)
			return
		}
		c.JSON(http.StatusCreated, d)
	}
}

func getDraftHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := a.Draft()
		if err != nil {
			draftError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func cancelDraftHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.CancelDraft()
		c.Status(http.StatusNoContent)
	}
}

func addRowHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := a.AddRow()
		if err != nil {
			draftError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func editItemHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid item index")
			return
		}
		var req EditItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Field == "" {
			httpx.Error(c, http.StatusBadRequest, "field and value are required")
			return
		}
		d, err := a.EditItem(index, req.Field, req.Value)
		if err != nil {
			draftError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func removeRowHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid item index")
			return
		}
		d, err := a.RemoveRow(index)
		if err != nil {
			draftError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func normalizeHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NormalizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid json body")
			return
		}
		d, err := a.Normalize(c.Request.Context(), req.Text)
		if err != nil {
			draftError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func saveDraftHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := a.SaveDraft()
		if err != nil {
			draftError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func listCustomersHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"customers": a.Customers()})
	}
}

func createCustomerHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid json body")
			return
		}
		cu, err := a.AddCustomer(req.Name)
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, cu)
	}
}

func deleteCustomerHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.DeleteCustomer(c.Param("id")); err != nil {
			httpx.Error(c, http.StatusNotFound, err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listOrdersHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := report.Filter(a.Orders(), c.Query("customer_id"), c.Query("start"), c.Query("end"))
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func todayOrdersHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": report.Today(a.Orders(), time.Now().UTC())})
	}
}

func statsHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, report.Compute(a.Orders(), len(a.Customers()), time.Now().UTC()))
	}
}

func printReportHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := report.Filter(a.Orders(), c.Query("customer_id"), c.Query("start"), c.Query("end"))
		if len(orders) == 0 {
			httpx.Error(c, http.StatusNotFound, "no orders in the selected range")
			return
		}
		title := c.Query("title")
		if title == "" {
			title = "订单报表"
		}
		html, err := report.PrintableHTML(orders, a.CustomerNames(), title, time.Now().UTC())
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "failed to render report")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}

// draftError maps domain errors to HTTP statuses. Every failure leaves prior
// state intact; retry is always a manual action.
func draftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrNoDraft):
		httpx.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrDraftOpen), errors.Is(err, app.ErrBusy), errors.Is(err, app.ErrStale):
		httpx.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, app.ErrValidation), errors.Is(err, ai.ErrEmptyInput),
		errors.Is(err, order.ErrBadIndex), errors.Is(err, customer.ErrNotFound):
		httpx.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrNoValidItems):
		httpx.Error(c, http.StatusUnprocessableEntity, "no valid items recognized, please retry")
	default:
		var ue *ai.UpstreamError
		if errors.As(err, &ue) {
			httpx.Error(c, http.StatusBadGateway, ue.Error())
			return
		}
		httpx.Error(c, http.StatusInternalServerError, err.Error())
	}
}
