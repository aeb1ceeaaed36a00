package classController

import (
	"campapi/database"
	"campapi/middleware"
	"campapi/models"
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"
)

const popularLimit = 6

// PopularInstructor is the projection returned by the instructor ranking
type PopularInstructor struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photoURL"`
	TotalClasses  int    `json:"totalClasses"`
	TotalStudents int    `json:"totalStudents"`
}

// GetPopularClasses returns the top public classes by enrolled students.
// Ties keep insertion order.
func GetPopularClasses(c *fiber.Ctx) error {
	var classes []models.PublicClass
	err := database.Database.Db.
		Order("students desc").
		Order("id asc").
		Limit(popularLimit).
		Find(&classes).Error
	if err != nil {
		log.Printf("Error fetching popular classes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch popular classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular classes fetched successfully!", classes)
}

// GetPopularInstructors ranks instructor accounts by the total number of
// students across their public classes
func GetPopularInstructors(c *fiber.Ctx) error {
	db := database.Database.Db

	var instructors []models.User
	if err := db.Where("role = ?", models.RoleInstructor).Order("id asc").Find(&instructors).Error; err != nil {
		log.Printf("Error fetching instructors: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch popular instructors!", nil)
	}

	popular := make([]PopularInstructor, 0, len(instructors))
	for _, instructor := range instructors {
		var classes []models.PublicClass
		if err := db.Where("instructor_email = ?", instructor.Email).Find(&classes).Error; err != nil {
			log.Printf("Error fetching classes for instructor %s: %v", instructor.Email, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch popular instructors!", nil)
		}

		totalStudents := 0
		for _, classItem := range classes {
			totalStudents += classItem.Students
		}

		popular = append(popular, PopularInstructor{
			Name:          instructor.Name,
			Email:         instructor.Email,
			PhotoURL:      instructor.PhotoURL,
			TotalClasses:  len(classes),
			TotalStudents: totalStudents,
		})
	}

	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].TotalStudents > popular[j].TotalStudents
	})
	if len(popular) > popularLimit {
		popular = popular[:popularLimit]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular instructors fetched successfully!", popular)
}
