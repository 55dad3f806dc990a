package interpret

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{name: "how much is a query", text: "how much did I spend today", want: IntentQuery},
		{name: "summary is a query", text: "summary please", want: IntentQuery},
		{name: "this month is a query", text: "spending this month", want: IntentQuery},
		{name: "spent is a record", text: "spent 20 on market", want: IntentRecord},
		{name: "bought is a record", text: "bought a shirt for 30", want: IntentRecord},
		{name: "received is a record", text: "received 1000 salary", want: IntentRecord},
		{name: "greeting is unknown", text: "hi", want: IntentUnknown},
		{name: "empty is unknown", text: "", want: IntentUnknown},
		{name: "query wins over record", text: "how much did I spend today", want: IntentQuery},
		{name: "case insensitive", text: "HOW MUCH did i spend", want: IntentQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.text); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
