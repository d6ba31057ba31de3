package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"lawyer", RoleLawyer},
		{"citizen", RoleCitizen},
		{"", RoleCitizen},
		{"ADMIN", RoleCitizen}, // roles are case-sensitive
		{"superuser", RoleCitizen},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleLawyer, RoleCitizen} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	if Role("root").Valid() || Role("").Valid() {
		t.Fatalf("unknown roles must not validate")
	}
}

func TestRole_Capabilities(t *testing.T) {
	type caps struct {
		create, support, review, offer, book, compose, seesAll bool
	}
	cases := map[Role]caps{
		RoleCitizen: {create: true, support: true, book: true},
		RoleLawyer:  {offer: true, compose: true},
		RoleAdmin:   {review: true, seesAll: true},
	}
	for r, want := range cases {
		got := caps{
			create:  r.CanCreatePetition(),
			support: r.CanSupportPetition(),
			review:  r.CanReviewPetition(),
			offer:   r.CanOfferSlots(),
			book:    r.CanBookSlot(),
			compose: r.CanComposeDeposition(),
			seesAll: r.SeesAllPetitions(),
		}
		if got != want {
			t.Errorf("%q capabilities = %+v, want %+v", r, got, want)
		}
	}
}
