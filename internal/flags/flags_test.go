package flags

import (
	"reflect"
	"testing"
)

func TestHasAddRemoveToggle(t *testing.T) {
	var f Flags

	f = Add(f, DomainBackend)
	if !Has(f, DomainBackend) {
		t.Error("expected backend bit set after Add")
	}
	if Has(f, DomainFrontend) {
		t.Error("unexpected frontend bit")
	}

	f = Add(f, DomainDevOps)
	f = Remove(f, DomainBackend)
	if Has(f, DomainBackend) {
		t.Error("expected backend bit cleared after Remove")
	}
	if !Has(f, DomainDevOps) {
		t.Error("Remove clobbered an unrelated bit")
	}

	// Toggle is an involution.
	before := f
	f = Toggle(f, DomainSecurity)
	if !Has(f, DomainSecurity) {
		t.Error("expected security bit set after first Toggle")
	}
	f = Toggle(f, DomainSecurity)
	if f != before {
		t.Errorf("double Toggle changed flags: got %d, want %d", f, before)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	f := Add(0, LevelJunior)
	if Add(f, LevelJunior) != f {
		t.Error("adding an already-set bit changed the value")
	}
	if Remove(Remove(f, LevelSenior), LevelSenior) != f {
		t.Error("removing an unset bit changed the value")
	}
}

func TestNamesDeclarationOrder(t *testing.T) {
	// Bits set in "reverse" order still come back in declaration order.
	f := Add(Add(0, DomainCareer), DomainFrontend)
	got := ExpertiseDomains.Names(f)
	want := []string{"Frontend", "Career"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names(%d) = %v, want %v", f, got, want)
	}
}

func TestNamesIgnoresUnknownBits(t *testing.T) {
	// A stored integer may carry bits from a newer enum revision.
	f := PaymentFree | Flags(1<<30)
	got := PaymentTypes.Names(f)
	want := []string{"Free"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names with unknown high bit = %v, want %v", got, want)
	}
}

func TestNamesEmpty(t *testing.T) {
	if got := MentorLevels.Names(0); len(got) != 0 {
		t.Errorf("Names(0) = %v, want empty", got)
	}
}

func TestFromNames(t *testing.T) {
	got := MentorLevels.FromNames([]string{"junior", "SENIOR"})
	want := LevelJunior | LevelSenior
	if got != want {
		t.Errorf("FromNames = %d, want %d", got, want)
	}
}

func TestFromNamesIgnoresUnknown(t *testing.T) {
	got := PaymentTypes.FromNames([]string{"Free", "bitcoin", ""})
	if got != PaymentFree {
		t.Errorf("FromNames with unknown names = %d, want %d", got, PaymentFree)
	}
	if PaymentTypes.FromNames(nil) != 0 {
		t.Error("FromNames(nil) should be 0")
	}
}

func TestRoundTrip(t *testing.T) {
	// FromNames(Names(f)) reconstructs f up to unknown-bit masking.
	families := map[string]Family{
		"levels":  MentorLevels,
		"payment": PaymentTypes,
		"domains": ExpertiseDomains,
		"topics":  ExpertiseTopics,
	}
	for name, fam := range families {
		for f := Flags(0); f <= fam.All(); f++ {
			masked := f & fam.All()
			if got := fam.FromNames(fam.Names(f)); got != masked {
				t.Fatalf("%s: round trip of %d = %d, want %d", name, f, got, masked)
			}
		}
	}
}

func TestMembersArePowersOfTwo(t *testing.T) {
	for _, fam := range []Family{MentorLevels, PaymentTypes, ExpertiseDomains, ExpertiseTopics} {
		var seen Flags
		for _, m := range fam {
			if m.Value == 0 || m.Value&(m.Value-1) != 0 {
				t.Errorf("%s: value %d is not a power of two", m.Name, m.Value)
			}
			if seen&m.Value != 0 {
				t.Errorf("%s: value %d reused within family", m.Name, m.Value)
			}
			seen |= m.Value
		}
	}
}
