package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/arnavk03/staffdir/internal/apperror"
	"github.com/arnavk03/staffdir/internal/models"
	"github.com/arnavk03/staffdir/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// EmployeeService handles the employee record lifecycle.
type EmployeeService struct {
	employees *mongo.Collection
}

func NewEmployeeService(employees *mongo.Collection) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// EmployeePage is one page of a filtered listing.
type EmployeePage struct {
	Employees   []models.Employee `json:"employees"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int64             `json:"currentPage"`
}

// Create persists a new employee record. The email lookup is a fast-path
// friendly error; the unique index on email is the real guard, so a
// duplicate-key error from the insert is reported the same way.
func (s *EmployeeService) Create(ctx context.Context, in validation.EmployeeInput, imageURL string) (models.Employee, error) {
	err := s.employees.FindOne(ctx, bson.M{"email": in.Email}).Err()
	if err == nil {
		return models.Employee{}, apperror.New(apperror.Duplicate, "Email already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Employee{}, apperror.Wrap(apperror.Internal, "Server error while creating employee", err)
	}

	employee := models.Employee{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		Email:       in.Email,
		Mobile:      in.Mobile,
		Designation: in.Designation,
		Gender:      in.Gender,
		Course:      in.Course,
		Image:       imageURL,
		CreatedAt:   time.Now(),
	}
	if _, err := s.employees.InsertOne(ctx, employee); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Employee{}, apperror.New(apperror.Duplicate, "Email already exists")
		}
		return models.Employee{}, apperror.Wrap(apperror.Internal, "Server error while creating employee", err)
	}
	return employee, nil
}

// List returns one page of employees, optionally filtered by a
// case-insensitive substring match on name.
func (s *EmployeeService) List(ctx context.Context, page, limit int64, search string) (EmployeePage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	filter := bson.M{}
	if search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}

	count, err := s.employees.CountDocuments(ctx, filter)
	if err != nil {
		return EmployeePage{}, apperror.Wrap(apperror.Internal, "Server error while fetching employees", err)
	}

	opts := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.employees.Find(ctx, filter, opts)
	if err != nil {
		return EmployeePage{}, apperror.Wrap(apperror.Internal, "Server error while fetching employees", err)
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return EmployeePage{}, apperror.Wrap(apperror.Internal, "Server error while fetching employees", err)
	}

	return EmployeePage{
		Employees:   employees,
		TotalPages:  TotalPages(count, limit),
		CurrentPage: page,
	}, nil
}

// TotalPages computes the page count as the ceiling of count/limit.
func TotalPages(count, limit int64) int64 {
	if limit < 1 {
		return 0
	}
	return (count + limit - 1) / limit
}

// GetByID fetches a single employee. A malformed identifier is treated the
// same as an unknown one.
func (s *EmployeeService) GetByID(ctx context.Context, id string) (models.Employee, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Employee{}, apperror.New(apperror.NotFound, "Employee not found")
	}

	var employee models.Employee
	err = s.employees.FindOne(ctx, bson.M{"_id": objID}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Employee{}, apperror.New(apperror.NotFound, "Employee not found")
		}
		return models.Employee{}, apperror.Wrap(apperror.Internal, "Server error while fetching employee", err)
	}
	return employee, nil
}

// Update replaces the supplied fields of an existing record. The image is
// replaced only when newImageURL is non-empty; otherwise the stored reference
// is kept. An email change that collides with another record is rejected by
// the unique index.
func (s *EmployeeService) Update(ctx context.Context, id string, in validation.EmployeeInput, newImageURL string) (models.Employee, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Employee{}, apperror.New(apperror.NotFound, "Employee not found")
	}

	set := bson.M{}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.Email != "" {
		set["email"] = in.Email
	}
	if in.Mobile != "" {
		set["mobile"] = in.Mobile
	}
	if in.Designation != "" {
		set["designation"] = in.Designation
	}
	if in.Gender != "" {
		set["gender"] = in.Gender
	}
	if len(in.Course) > 0 {
		set["course"] = in.Course
	}
	if newImageURL != "" {
		set["image"] = newImageURL
	}

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Employee
	err = s.employees.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Employee{}, apperror.New(apperror.NotFound, "Employee not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Employee{}, apperror.New(apperror.Duplicate, "Email already exists")
		}
		return models.Employee{}, apperror.Wrap(apperror.Internal, "Server error while updating employee", err)
	}
	return updated, nil
}

// Delete removes an employee by identifier.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperror.New(apperror.NotFound, "Employee not found")
	}

	result, err := s.employees.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperror.Wrap(apperror.Internal, "Server error while deleting employee", err)
	}
	if result.DeletedCount == 0 {
		return apperror.New(apperror.NotFound, "Employee not found")
	}
	return nil
}
