package sport

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Key
		wantOK bool
	}{
		{name: "football", in: "football", want: KeyFootball, wantOK: true},
		{name: "mixed case basketball", in: " Basketball ", want: KeyBasketball, wantOK: true},
		{name: "empty", in: "", wantOK: false},
		{name: "unsupported", in: "hockey", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKey(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ParseKey(%q)=(%q,%v) want=(%q,%v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestByKey_ReturnsFixedRecords(t *testing.T) {
	got, ok := ByKey(KeyBasketball)
	if !ok {
		t.Fatalf("expected basketball record")
	}
	if got != Basketball {
		t.Fatalf("unexpected basketball record: %+v", got)
	}
	if _, ok := ByKey("cricket"); ok {
		t.Fatalf("did not expect record for unknown key")
	}
}
