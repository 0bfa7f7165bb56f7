package handlers

import (
	"mime/multipart"

	"github.com/arnavk03/staffdir/internal/apperror"
	"github.com/arnavk03/staffdir/internal/services"
	"github.com/arnavk03/staffdir/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	employees *services.EmployeeService
	uploads   *services.UploadService
}

func NewEmployeeHandler(employees *services.EmployeeService, uploads *services.UploadService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, uploads: uploads}
}

// employeeInput reads the multipart form fields of a create or update
// request. The course field may be repeated.
func employeeInput(c *fiber.Ctx) validation.EmployeeInput {
	in := validation.EmployeeInput{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Mobile:      c.FormValue("mobile"),
		Designation: c.FormValue("designation"),
		Gender:      c.FormValue("gender"),
	}
	if form, err := c.MultipartForm(); err == nil {
		for _, v := range form.Value["course"] {
			if v != "" {
				in.Course = append(in.Course, v)
			}
		}
	}
	return in
}

// imageFile returns the uploaded image header, or nil when the request
// carries none.
func imageFile(c *fiber.Ctx) *multipart.FileHeader {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fileHeader
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	in := employeeInput(c)
	if details := validation.ValidateCreate(in); len(details) > 0 {
		return respondError(c, apperror.NewValidation(details))
	}

	imageURL := ""
	if fileHeader := imageFile(c); fileHeader != nil {
		url, err := h.uploads.Store(c.Context(), fileHeader)
		if err != nil {
			return respondError(c, err)
		}
		imageURL = url
	}

	employee, err := h.employees.Create(c.Context(), in, imageURL)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Employee created successfully",
		"employee": employee,
	})
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	search := c.Query("search")

	result, err := h.employees.List(c.Context(), page, limit, search)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	employee, err := h.employees.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"employee": employee})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	in := employeeInput(c)
	if details := validation.ValidateUpdate(in); len(details) > 0 {
		return respondError(c, apperror.NewValidation(details))
	}

	newImageURL := ""
	if fileHeader := imageFile(c); fileHeader != nil {
		url, err := h.uploads.Store(c.Context(), fileHeader)
		if err != nil {
			return respondError(c, err)
		}
		newImageURL = url
	}

	employee, err := h.employees.Update(c.Context(), c.Params("id"), in, newImageURL)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Employee updated successfully",
		"employee": employee,
	})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.employees.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}
