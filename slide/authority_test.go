package slide

import "testing"

func TestShouldSimulate(t *testing.T) {
	tests := map[string]struct {
		o    Ownership
		want bool
	}{
		"local client":             {Ownership{IsOwner: true, IsControlled: true}, true},
		"host player":              {LocalOwnership(), true},
		"server, remote player":    {Ownership{IsOwner: true, IsControlled: true, IsServer: true}, false},
		"not owner":                {Ownership{IsControlled: true}, false},
		"not controlled":           {Ownership{IsOwner: true}, false},
		"testing bypass":           {Ownership{IsTestingPlayer: true}, true},
		"testing bypass on server": {Ownership{IsServer: true, IsTestingPlayer: true}, true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ShouldSimulate(tc.o); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
