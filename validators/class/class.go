package classValidator

import (
	"campapi/middleware"
	"campapi/models"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateClassRequest is the submission payload after coercion. Clients send
// seats and price either as numbers or as strings, so the raw body is parsed
// loosely and coerced here.
type CreateClassRequest struct {
	Title           string
	Seats           int
	Price           float64
	Image           string
	InstructorName  string
	InstructorEmail string
}

// UpdateClassRequest is a partial status/feedback update
type UpdateClassRequest struct {
	ClassID  uint
	Status   *string `json:"status"`
	Feedback *string `json:"feedback"`
}

// coerceInt accepts JSON numbers and numeric strings
func coerceInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

// coerceFloat accepts JSON numbers and numeric strings
func coerceFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string      `json:"title"`
			Seats           interface{} `json:"seats"`
			Price           interface{} `json:"price"`
			Image           string      `json:"image"`
			InstructorName  string      `json:"instructorName"`
			InstructorEmail string      `json:"instructorEmail"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validated := &CreateClassRequest{
			Title:           strings.TrimSpace(reqData.Title),
			Image:           reqData.Image,
			InstructorName:  reqData.InstructorName,
			InstructorEmail: reqData.InstructorEmail,
		}

		// Validate Title
		if validated.Title == "" {
			errors["title"] = "Title is required!"
		}

		// Validate Seats
		if seats, err := coerceInt(reqData.Seats); err != nil || seats < 0 {
			errors["seats"] = "Seats must be a non-negative number!"
		} else {
			validated.Seats = seats
		}

		// Validate Price
		if price, err := coerceFloat(reqData.Price); err != nil || price < 0 {
			errors["price"] = "Price must be a non-negative number!"
		} else {
			validated.Price = price
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", validated)
		return c.Next()
	}
}

func UpdateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
		}

		reqData := new(UpdateClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != nil {
			status := strings.TrimSpace(*reqData.Status)
			if status != models.ClassPending && status != models.ClassApproved && status != models.ClassDenied {
				errors["status"] = "Status must be one of pending, approved or denied!"
			}
			reqData.Status = &status
		}

		if reqData.Status == nil && reqData.Feedback == nil {
			errors["body"] = "Nothing to update!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.ClassID = uint(id)
		c.Locals("validatedUpdate", reqData)
		return c.Next()
	}
}

func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
		}

		c.Locals("classID", uint(id))
		return c.Next()
	}
}
