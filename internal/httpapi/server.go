package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modeler/internal/catalog"
	"modeler/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Plan(model types.ModelDescriptor, accelerator string) (types.InferencePlan, error)
	Catalog() catalog.Catalog
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := &handlers{svc: svc}
	r.Post("/plan", h.plan)
	r.Get("/instances", h.instances)
	r.Get("/tasks", h.tasks)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

type handlers struct{ svc Service }

// plan godoc
// @Summary      Plan an inference deployment
// @Description  Selects the smallest instance whose memory exceeds the model's requirement and renders the deployment snippet.
// @Tags         plan
// @Accept       json
// @Produce      json
// @Param        request  body      types.PlanRequest  true  "Model and accelerator"
// @Success      200      {object}  types.InferencePlan
// @Failure      400      {object}  types.ErrorResponse
// @Failure      404      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Router       /plan [post]
func (h *handlers) plan(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Model.ID) == "" {
		writeJSONError(w, http.StatusBadRequest, "model.id is required")
		return
	}
	if req.Model.SizeInBytesFP32 <= 0 {
		writeJSONError(w, http.StatusBadRequest, "model.size_in_bytes_fp32 must be positive")
		return
	}
	acc := req.Accelerator
	if acc == "" {
		acc = defaultAccelerator
	}

	lvl := requestLogLevel(r)
	start := time.Now()
	plan, err := h.svc.Plan(req.Model, acc)
	plansTotal.WithLabelValues(h.acceleratorLabel(acc), planOutcome(err)).Inc()
	if err != nil {
		status := statusForError(err)
		writeJSONError(w, status, err.Error())
		logPlanEnd(r, lvl, status, start, err)
		return
	}
	writeJSON(w, plan)
	logPlanEnd(r, lvl, http.StatusOK, start, nil)
}

// acceleratorLabel bounds metric cardinality to cataloged accelerators.
func (h *handlers) acceleratorLabel(acc string) string {
	if _, ok := h.svc.Catalog().Instances[acc]; ok {
		return acc
	}
	return "unknown"
}

// instances godoc
// @Summary      List cataloged instances
// @Tags         catalog
// @Produce      json
// @Param        accelerator  query     string  false  "Restrict to one accelerator"
// @Success      200          {object}  types.InstancesResponse
// @Failure      404          {object}  types.ErrorResponse
// @Router       /instances [get]
func (h *handlers) instances(w http.ResponseWriter, r *http.Request) {
	cat := h.svc.Catalog()
	out := types.InstancesResponse{Instances: map[string][]types.Instance{}}
	if acc := r.URL.Query().Get("accelerator"); acc != "" {
		if _, ok := cat.Instances[acc]; !ok {
			writeJSONError(w, http.StatusNotFound, "unknown accelerator: "+acc)
			return
		}
		out.Instances[acc] = cat.InstancesFor(acc)
	} else {
		for _, a := range cat.Accelerators() {
			out.Instances[a] = cat.InstancesFor(a)
		}
	}
	writeJSON(w, out)
}

// tasks godoc
// @Summary      List tasks with a snippet template
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  types.TasksResponse
// @Router       /tasks [get]
func (h *handlers) tasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, types.TasksResponse{Tasks: h.svc.Catalog().Tasks()})
}
