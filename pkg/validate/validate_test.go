package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/vastra/pkg/validate"
)

type registerInput struct {
	Name                 string `json:"name"                  validate:"required,min=2,max=100"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=4"`
	PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
}

type addToCartInput struct {
	ProductID int    `json:"product_id" validate:"required,integer,gte=1"`
	Quantity  int    `json:"quantity"   validate:"required,integer,gt=0"`
	Size      string `json:"size"       validate:"required"`
}

func TestValidRegisterInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:                 "Asha",
		Email:                "asha@example.com",
		Password:             "secret",
		PasswordConfirmation: "secret",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestConfirmedRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:                 "Asha",
		Email:                "asha@example.com",
		Password:             "secret",
		PasswordConfirmation: "wrong",
	})
	if _, ok := errs["password_confirmation"]; !ok {
		t.Errorf("expected confirmation mismatch to fail, got: %v", errs)
	}
}

func TestQuantityMustBePositive(t *testing.T) {
	errs := validate.Struct(addToCartInput{ProductID: 42, Quantity: 0, Size: "M"})
	if _, ok := errs["quantity"]; !ok {
		t.Errorf("expected quantity 0 to fail gt=0, got: %v", errs)
	}

	errs = validate.Struct(addToCartInput{ProductID: 42, Quantity: 2, Size: "M"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid input to pass, got: %v", errs)
	}
}

func TestSizeRequired(t *testing.T) {
	errs := validate.Struct(addToCartInput{ProductID: 42, Quantity: 1, Size: " "})
	if _, ok := errs["size"]; !ok {
		t.Errorf("expected blank size to fail required, got: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Address string `json:"address" validate:"nullable,min=5"`
	}
	if errs := validate.Struct(in{Address: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Address: "x"}); !validate.HasErrors(errs) {
		t.Error("expected short non-empty address to fail min")
	}
}
