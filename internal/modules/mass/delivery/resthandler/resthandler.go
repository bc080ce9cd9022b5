package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"church-finder-service/internal/modules/mass/domain"
	"church-finder-service/pkg/shared"
	"church-finder-service/pkg/shared/usecase"

	"github.com/golangid/candi/candihelper"
	restserver "github.com/golangid/candi/codebase/app/rest_server"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/tracer"
	"github.com/golangid/candi/wrapper"
)

// RestHandler handler
type RestHandler struct {
	mw        interfaces.Middleware
	uc        usecase.Usecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(deps dependency.Dependency, uc usecase.Usecase) *RestHandler {
	return &RestHandler{
		uc: uc, mw: deps.GetMiddleware(), validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root interfaces.RESTRouter) {
	mass := root.Group(candihelper.V1 + "/mass")
	mass.GET("/", h.getAllMass)
	mass.GET("/{id}", h.getDetailMassByID)
	mass.POST("/", h.createMass)
	mass.PUT("/{id}", h.updateMass)
	mass.DELETE("/{id}", h.deleteMass)
}

func (h *RestHandler) getAllMass(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "MassDeliveryREST:GetAllMass")
	defer trace.Finish()

	var filter domain.FilterMass
	if err := candihelper.ParseFromQueryParam(req.URL.Query(), &filter); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse filter", err).JSON(rw)
		return
	}

	data, meta, err := h.uc.Mass().GetAllMass(ctx, &filter)
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", meta, data).JSON(rw)
}

func (h *RestHandler) getDetailMassByID(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "MassDeliveryREST:GetDetailMassByID")
	defer trace.Finish()

	data, err := h.uc.Mass().GetDetailMass(ctx, restserver.URLParam(req, "id"))
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(rw)
}

func (h *RestHandler) createMass(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "MassDeliveryREST:CreateMass")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("mass/save", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestMass
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}

	data, err := h.uc.Mass().CreateMass(ctx, &payload)
	if err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusCreated, "Success", data).JSON(rw)
}

func (h *RestHandler) updateMass(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "MassDeliveryREST:UpdateMass")
	defer trace.Finish()

	body, _ := io.ReadAll(req.Body)
	if err := h.validator.ValidateDocument("mass/save", body); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(rw)
		return
	}

	var payload domain.RequestMass
	if err := json.Unmarshal(body, &payload); err != nil {
		wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(rw)
		return
	}
	payload.ID = restserver.URLParam(req, "id")

	if err := h.uc.Mass().UpdateMass(ctx, &payload); err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success").JSON(rw)
}

func (h *RestHandler) deleteMass(rw http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceWithContext(req.Context(), "MassDeliveryREST:DeleteMass")
	defer trace.Finish()

	if err := h.uc.Mass().DeleteMass(ctx, restserver.URLParam(req, "id")); err != nil {
		wrapper.NewHTTPResponse(shared.HTTPStatusFromError(err), err.Error()).JSON(rw)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, "Success").JSON(rw)
}
