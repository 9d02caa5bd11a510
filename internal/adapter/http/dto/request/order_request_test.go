package request

import "testing"

func TestOrderRequest_ToInput(t *testing.T) {
	r := OrderRequest{Phone: "+15551234567", Name: "A", Address: "1 Main St", Details: "x"}
	in := r.ToInput()
	if in.Phone != "+15551234567" || in.Name != "A" || in.Address != "1 Main St" || in.Details != "x" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Services == nil || len(in.Services) != 0 {
		t.Fatalf("expected empty services, got %#v", in.Services)
	}

	r.Services = []string{"b", "a"}
	in = r.ToInput()
	if len(in.Services) != 2 || in.Services[0] != "b" || in.Services[1] != "a" {
		t.Fatalf("expected services order kept, got %v", in.Services)
	}
}
