package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	appattest "github.com/staffboard/attestation-dashboard/internal/application/attestation"
	"github.com/staffboard/attestation-dashboard/internal/application/dto"
	"github.com/staffboard/attestation-dashboard/internal/domain"
)

// EmployeeHandler serves the employee selector, summary card, detail tabs
// and the downloadable report.
type EmployeeHandler struct {
	roster  *appattest.RosterUseCase
	details *appattest.DetailUseCase
	report  *appattest.ReportUseCase
}

// NewEmployeeHandler builds the employee handler.
func NewEmployeeHandler(
	roster *appattest.RosterUseCase,
	details *appattest.DetailUseCase,
	report *appattest.ReportUseCase,
) *EmployeeHandler {
	return &EmployeeHandler{roster: roster, details: details, report: report}
}

// List godoc
// @Summary      Employee selector options, sorted by name
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EmployeeListDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.roster.ListEmployees(c.Context())
	if err != nil {
		return rosterError(c, err)
	}
	return c.JSON(out)
}

// Card godoc
// @Summary      Summary card and transposed roster record for one employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "employee id"
// @Success      200  {object}  dto.EmployeeCardDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Card(c *fiber.Ctx) error {
	id, err := employeeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "employee id must be an integer"})
	}
	out, err := h.roster.EmployeeCard(c.Context(), id)
	if err != nil {
		return rosterError(c, err)
	}
	return c.JSON(out)
}

// Details godoc
// @Summary      Filtered and aggregated detail tabs for one employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "employee id"
// @Success      200  {object}  dto.DetailTabsDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/details [get]
func (h *EmployeeHandler) Details(c *fiber.Ctx) error {
	id, err := employeeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "employee id must be an integer"})
	}
	out, err := h.details.EmployeeTabs(c.Context(), id)
	if err != nil {
		return rosterError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Attestation report PDF for one employee
// @Tags         employees
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  int  true  "employee id"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/report.pdf [get]
func (h *EmployeeHandler) Report(c *fiber.Ctx) error {
	id, err := employeeID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "employee id must be an integer"})
	}
	pdf, filename, err := h.report.EmployeeReportPDF(c.Context(), id)
	if err != nil {
		return rosterError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func employeeID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// rosterError maps the recoverable roster conditions to user-facing
// responses. Everything here halts only the current render, never the
// process.
func rosterError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRosterNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ROSTER_NOT_FOUND", Message: "Файл final.csv не найден."})
	case errors.Is(err, domain.ErrEmptyRoster):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPTY_ROSTER", Message: "Нет данных сотрудников в final.csv."})
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "Выбранный сотрудник не найден."})
	default:
		if log := GetLogger(c); log != nil {
			log.Error().Err(err).Msg("unexpected roster error")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
