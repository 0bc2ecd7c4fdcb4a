package request

import "testing"

func TestDynamicPlanCheckoutRequest_AddonSelections(t *testing.T) {
	r := DynamicPlanCheckoutRequest{
		ProductID: 7,
		Metadata: CheckoutMetadataRequest{
			Addons: []AddonSelectionRequest{
				{Field: "gift_wrap", Value: "yes", Price: 5},
				{Field: "note", Value: "happy birthday"},
			},
		},
	}

	addons := r.AddonSelections()
	if len(addons) != 2 {
		t.Fatalf("expected 2 addons, got %d", len(addons))
	}
	if addons[0].Field != "gift_wrap" || addons[0].Price != 5 {
		t.Fatalf("unexpected first addon: %+v", addons[0])
	}
	if addons[1].Field != "note" || addons[1].Value != "happy birthday" || addons[1].Price != 0 {
		t.Fatalf("unexpected second addon: %+v", addons[1])
	}

	empty := DynamicPlanCheckoutRequest{ProductID: 7}
	if got := empty.AddonSelections(); got != nil {
		t.Fatalf("expected nil for empty metadata, got %+v", got)
	}
}
