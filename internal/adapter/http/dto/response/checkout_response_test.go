package response

import (
	"testing"

	"github.com/waqaskhan1437/wishesu-sub006/internal/domain/entities"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase"
)

func TestFromCheckoutResult(t *testing.T) {
	res := FromCheckoutResult(usecase.CheckoutResult{
		CheckoutID:  "ch_1",
		CheckoutURL: "https://pay.test/ch_1",
		ExpiresIn:   "15 minutes",
	})
	if res.CheckoutID != "ch_1" || res.CheckoutURL != "https://pay.test/ch_1" || res.ExpiresIn != "15 minutes" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromDynamicPlanResult(t *testing.T) {
	meta := entities.SessionMetadata{
		ProductID: 7,
		Addons:    []entities.AddonSelection{{Field: "note", Value: "hi"}},
		Amount:    30,
	}
	res := FromDynamicPlanResult(usecase.DynamicPlanResult{
		PlanID:         "plan_dyn",
		CheckoutID:     "ch_9",
		CheckoutURL:    "https://pay.test/ch_9",
		ProductID:      7,
		Email:          "buyer@example.com",
		Metadata:       meta,
		ExpiresIn:      "15 minutes",
		EmailPrefilled: true,
	})
	if res.PlanID != "plan_dyn" || res.CheckoutID != "ch_9" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ProductID != 7 || !res.EmailPrefilled || res.Warning != "" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Metadata.Addons) != 1 || res.Metadata.Amount != 30 {
		t.Fatalf("unexpected metadata: %+v", res.Metadata)
	}
}

func TestFromSweepResult(t *testing.T) {
	res := FromSweepResult(usecase.SweepResult{Archived: 4, Failed: 1})
	if res.Archived != 4 || res.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.Message != "archived 4 expired checkout sessions, 1 failed" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}
