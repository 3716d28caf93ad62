package validators

import (
	"strings"
	"testing"

	"github.com/levushkin/orders-backend/internal/models"
)

func makeValidOrder() models.OrderRequest {
	return models.OrderRequest{
		Firstname: "Иван",
		Lastname:  "Петров",
		Phone:     "+79990001122",
		Email:     "ivan@example.com",
		Telegram:  "@ivan",
		Region:    "Московская область",
		City:      "Москва",
		Address:   "ул. Ленина, д. 1",
		Comment:   "Позвонить вечером",
	}
}

func TestValidateOrder_RequiredFields(t *testing.T) {
	testCases := []struct {
		TestName      string
		Mutate        func(r *models.OrderRequest)
		ExpectedError string
	}{
		{
			TestName:      "Success. All fields set #1",
			Mutate:        func(r *models.OrderRequest) {},
			ExpectedError: "",
		},
		{
			TestName:      "Error. Missing firstname #2",
			Mutate:        func(r *models.OrderRequest) { r.Firstname = "" },
			ExpectedError: "Обязательные поля: firstname",
		},
		{
			TestName:      "Error. Whitespace only phone #3",
			Mutate:        func(r *models.OrderRequest) { r.Phone = "   " },
			ExpectedError: "Обязательные поля: phone",
		},
		{
			TestName: "Error. Multiple missing fields listed #4",
			Mutate: func(r *models.OrderRequest) {
				r.Lastname = ""
				r.Region = " "
				r.Address = ""
			},
			ExpectedError: "Обязательные поля: lastname, region, address",
		},
		{
			TestName: "Success. Optional fields empty #5",
			Mutate: func(r *models.OrderRequest) {
				r.Telegram = ""
				r.Comment = ""
			},
			ExpectedError: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			request := makeValidOrder()
			tc.Mutate(&request)

			err := ValidateOrder(&request)

			if tc.ExpectedError == "" {
				if err != nil {
					t.Errorf("Expected no error, got '%v'", err)
				}
			} else if err == nil {
				t.Errorf("Expected error '%s', got none", tc.ExpectedError)
			} else if err.Error() != tc.ExpectedError {
				t.Errorf("Expected error: '%s', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestValidateOrder_FieldLimits(t *testing.T) {
	testCases := []struct {
		TestName      string
		Mutate        func(r *models.OrderRequest)
		ExpectedError string
	}{
		{
			TestName:      "Error. Firstname too long #1",
			Mutate:        func(r *models.OrderRequest) { r.Firstname = strings.Repeat("а", MaxNameLen+1) },
			ExpectedError: "Слишком длинное значение поля: firstname",
		},
		{
			TestName:      "Error. Phone too long #2",
			Mutate:        func(r *models.OrderRequest) { r.Phone = strings.Repeat("1", MaxPhoneLen+1) },
			ExpectedError: "Слишком длинное значение поля: phone",
		},
		{
			TestName:      "Error. Address too long #3",
			Mutate:        func(r *models.OrderRequest) { r.Address = strings.Repeat("б", MaxAddressLen+1) },
			ExpectedError: "Слишком длинное значение поля: address",
		},
		{
			TestName:      "Error. Comment too long #4",
			Mutate:        func(r *models.OrderRequest) { r.Comment = strings.Repeat("в", MaxCommentLen+1) },
			ExpectedError: "Слишком длинное значение поля: comment",
		},
		{
			TestName:      "Success. Value exactly at limit #5",
			Mutate:        func(r *models.OrderRequest) { r.City = strings.Repeat("г", MaxCityLen) },
			ExpectedError: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			request := makeValidOrder()
			tc.Mutate(&request)

			err := ValidateOrder(&request)

			if tc.ExpectedError == "" {
				if err != nil {
					t.Errorf("Expected no error, got '%v'", err)
				}
			} else if err == nil {
				t.Errorf("Expected error '%s', got none", tc.ExpectedError)
			} else if err.Error() != tc.ExpectedError {
				t.Errorf("Expected error: '%s', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestValidateOrder_Email(t *testing.T) {
	testCases := []struct {
		TestName string
		Email    string
		Valid    bool
	}{
		{"Success. Plain address #1", "user@example.com", true},
		{"Success. Address with plus #2", "user+tag@example.com", true},
		{"Error. No at sign #3", "user.example.com", false},
		{"Error. No domain #4", "user@", false},
		{"Error. Spaces inside #5", "us er@example.com", false},
		{"Error. Display name form #6", "Иван <user@example.com>", false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			request := makeValidOrder()
			request.Email = tc.Email

			err := ValidateOrder(&request)

			if tc.Valid && err != nil {
				t.Errorf("Expected valid email '%s', got error '%v'", tc.Email, err)
			}
			if !tc.Valid && err == nil {
				t.Errorf("Expected error for email '%s', got none", tc.Email)
			}
		})
	}
}

func TestNormalizeOrder_Telegram(t *testing.T) {
	testCases := []struct {
		TestName string
		Telegram string
		Expected string
	}{
		{"Single at sign becomes empty #1", "@", ""},
		{"At sign with spaces becomes empty #2", "  @  ", ""},
		{"Handle is kept #3", "@ivan", "@ivan"},
		{"Handle without at sign is kept #4", "ivan", "ivan"},
		{"Empty stays empty #5", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			request := makeValidOrder()
			request.Telegram = tc.Telegram

			NormalizeOrder(&request)

			if request.Telegram != tc.Expected {
				t.Errorf("Expected telegram '%s', got '%s'", tc.Expected, request.Telegram)
			}
		})
	}
}
