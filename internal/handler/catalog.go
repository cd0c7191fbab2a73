package handler

import (
	"net/http"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/respond"
	"github.com/templui/mediavault/internal/service"
)

type catalogHandler struct {
	categoryService *service.CategoryService
	planService     *service.PlanService
}

func NewCatalogHandler(categoryService *service.CategoryService, planService *service.PlanService) *catalogHandler {
	return &catalogHandler{
		categoryService: categoryService,
		planService:     planService,
	}
}

func (h *catalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.All(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch categories", err)
		return
	}
	respond.JSON(w, http.StatusOK, categories)
}

func (h *catalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input model.CreateCategory
	if !decodeBody(w, r, &input) {
		return
	}

	category, err := h.categoryService.Create(r.Context(), &input)
	if err != nil {
		writeError(w, r, err, "Failed to create category")
		return
	}
	respond.JSON(w, http.StatusCreated, category)
}

func (h *catalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "category")
	if !ok {
		return
	}

	var patch model.CategoryPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, r, err, "Failed to update category")
		return
	}
	respond.JSON(w, http.StatusOK, category)
}

func (h *catalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "category")
	if !ok {
		return
	}

	err := h.categoryService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to delete category")
		return
	}
	writeSuccess(w)
}

// ActivePlans is the public pricing list.
func (h *catalogHandler) ActivePlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.Active(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch subscription plans", err)
		return
	}
	respond.JSON(w, http.StatusOK, plans)
}

func (h *catalogHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.All(r.Context())
	if err != nil {
		respond.Internal(w, r, "Failed to fetch subscription plans", err)
		return
	}
	respond.JSON(w, http.StatusOK, plans)
}

func (h *catalogHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var input model.CreateSubscriptionPlan
	if !decodeBody(w, r, &input) {
		return
	}

	plan, err := h.planService.Create(r.Context(), &input)
	if err != nil {
		writeError(w, r, err, "Failed to create subscription plan")
		return
	}
	respond.JSON(w, http.StatusCreated, plan)
}

func (h *catalogHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "plan")
	if !ok {
		return
	}

	var patch model.SubscriptionPlanPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	plan, err := h.planService.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, r, err, "Failed to update subscription plan")
		return
	}
	respond.JSON(w, http.StatusOK, plan)
}

func (h *catalogHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "plan")
	if !ok {
		return
	}

	err := h.planService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to delete subscription plan")
		return
	}
	writeSuccess(w)
}
