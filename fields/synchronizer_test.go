package fields_test

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflectkit/fields"
	"reflectkit/internal/fixture"
	"reflectkit/registry"
)

func field(t *testing.T, typ reflect.Type, name string) fields.Field {
	t.Helper()

	f, err := fields.Lookup(typ, name)
	require.NoError(t, err)

	return f
}

func TestCopyValue_AllFields(t *testing.T) {
	t.Parallel()

	src := fixture.Member{
		Person: fixture.Person{Name: "Alex", Nickname: "al", Gender: fixture.Male, Married: true},
	}
	dst := &fixture.Member{}

	for _, f := range fields.AllDeclared(reflect.TypeFor[fixture.Member](), fields.DefaultIgnore()...) {
		outcome, err := fields.CopyValue(src, dst, f)
		require.NoError(t, err, f.String())
		assert.Equal(t, fields.Copied, outcome)
	}

	assert.Equal(t, src, *dst, spew.Sdump(dst))
}

func TestCopyValue_Final(t *testing.T) {
	t.Parallel()

	src := &fixture.Light{On: true, Level: 3}
	dst := &fixture.Light{On: false, Level: 1}

	var outcomes []fields.Outcome
	for _, f := range fields.Declared(reflect.TypeFor[fixture.Light]()) {
		outcome, err := fields.CopyValue(src, dst, f)
		require.NoError(t, err)
		outcomes = append(outcomes, outcome)
	}

	assert.Equal(t, []fields.Outcome{fields.SkippedFinal, fields.Copied}, outcomes)
	assert.Equal(t, fixture.Light{On: false, Level: 3}, *dst)
	assert.Equal(t, "skipped final", fields.SkippedFinal.String())
}

func TestCopyValue_Arrays(t *testing.T) {
	t.Parallel()

	one := 1.5
	src := &fixture.PrimitiveArrays{
		Bools:    []bool{true},
		Bytes:    []byte("go"),
		Runes:    []rune("go"),
		Shorts:   []int16{1},
		Ints:     []int{1, 2},
		Longs:    []int64{3},
		Floats:   []float32{0.5},
		Doubles:  []float64{0.25},
		Boxed:    []*float64{&one, nil},
		Fixed:    [2]int{7, 8},
		Statuses: []fixture.Status{fixture.StatusBlocked},
	}
	dst := &fixture.PrimitiveArrays{}

	for _, f := range fields.Declared(reflect.TypeFor[fixture.PrimitiveArrays]()) {
		_, err := fields.CopyValue(src, dst, f)
		require.NoError(t, err, f.Name)
	}

	assert.Equal(t, src, dst)

	dst.Ints[0] = 42
	assert.Equal(t, 1, src.Ints[0], "slices get new backing storage")
	assert.Same(t, src.Boxed[0], dst.Boxed[0], "elements keep their identity")

	src.Fixed[0] = 0
	assert.Equal(t, 7, dst.Fixed[0])

	empty := &fixture.PrimitiveArrays{}
	_, err := fields.CopyValueByName(empty, dst, "Ints")
	require.NoError(t, err)
	assert.Nil(t, dst.Ints)
}

func TestCopyValue_Enums(t *testing.T) {
	t.Parallel()

	src := &fixture.Account{Status: fixture.StatusBlocked, Gender: fixture.Female}
	dst := &fixture.Account{}

	for _, name := range []string{"Status", "Gender"} {
		outcome, err := fields.CopyValueByName(src, dst, name)
		require.NoError(t, err)
		assert.Equal(t, fields.Copied, outcome)
	}

	assert.Equal(t, fixture.StatusBlocked, dst.Status)
	assert.Equal(t, fixture.Female, dst.Gender)
}

func TestCopyValue_UnknownEnumConstants(t *testing.T) {
	t.Parallel()

	src := &fixture.Account{Status: fixture.Status("PENDING"), Gender: fixture.Gender(7)}
	dst := &fixture.Account{Status: fixture.StatusActive, Gender: fixture.Female}

	for _, name := range []string{"Status", "Gender"} {
		t.Run(name, func(t *testing.T) {
			outcome, err := fields.CopyValueByName(src, dst, name)
			require.ErrorIs(t, err, fields.ErrUnknownEnumConstant, spew.Sdump(src))
			assert.Zero(t, outcome)

			var fieldErr *fields.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, name, fieldErr.Field)
		})
	}

	assert.Equal(t, fixture.StatusActive, dst.Status, "destination left untouched")
	assert.Equal(t, fixture.Female, dst.Gender, "destination left untouched")
	assert.Nil(t, fields.CopyOfEnumValue(fixture.Gender(7), reflect.TypeFor[fixture.Gender]()))
}

func TestCopyValue_Promoted(t *testing.T) {
	t.Parallel()

	src := &fixture.PremiumMember{Member: &fixture.Member{Person: fixture.Person{Name: "Nik"}}}
	dst := &fixture.PremiumMember{Member: &fixture.Member{}}

	_, err := fields.CopyValueByName(src, dst, "Name")
	require.NoError(t, err)
	assert.Equal(t, "Nik", dst.Name)

	_, err = fields.CopyValueByName(src, &fixture.PremiumMember{}, "Name")
	assert.ErrorIs(t, err, fields.ErrIllegalAccess, "nil embedded pointer")

	_, err = fields.CopyValueByName(&fixture.PremiumMember{}, dst, "Name")
	assert.ErrorIs(t, err, fields.ErrIllegalAccess)
}

func TestCopyValue_Errors(t *testing.T) {
	t.Parallel()

	nameField := field(t, reflect.TypeFor[fixture.Person](), "Name")
	person := fixture.NewNamedPerson("Ann")

	tests := []struct {
		name     string
		src, dst any
		f        fields.Field
		want     error
	}{
		{"dst not a pointer", person, fixture.Person{}, nameField, fields.ErrIllegalAccess},
		{"dst nil pointer", person, (*fixture.Person)(nil), nameField, fields.ErrIllegalAccess},
		{"dst nil", person, nil, nameField, fields.ErrIllegalAccess},
		{"src nil", nil, &fixture.Person{}, nameField, fields.ErrIllegalAccess},
		{"src not a struct", 42, &fixture.Person{}, nameField, fields.ErrIllegalAccess},
		{"field of another type", person, &fixture.Light{}, nameField, fields.ErrNoSuchField},
		{"field without index", person, &fixture.Person{}, fields.Field{Name: "Name"}, fields.ErrNoSuchField},
		{
			"unexported",
			fixture.NewAccount(nil, 5), &fixture.Account{},
			field(t, reflect.TypeFor[fixture.Account](), "balance"),
			fields.ErrIllegalAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fields.CopyValue(tt.src, tt.dst, tt.f)
			require.ErrorIs(t, err, tt.want)

			var fieldErr *fields.FieldError
			assert.ErrorAs(t, err, &fieldErr)
		})
	}
}

func TestSynchronizer_AllowUnexported(t *testing.T) {
	t.Parallel()

	s := &fields.Synchronizer{AllowUnexported: true}
	balance := field(t, reflect.TypeFor[fixture.Account](), "balance")

	src := fixture.NewAccount(fixture.NewPerson(), 250)
	dst := &fixture.Account{}

	outcome, err := s.CopyValue(*src, dst, balance)
	require.NoError(t, err)
	assert.Equal(t, fields.Copied, outcome)
	assert.EqualValues(t, 250, dst.Balance())

	got, err := s.GetValue(src, "balance")
	require.NoError(t, err)
	assert.Equal(t, int64(250), got)

	require.NoError(t, s.SetValue(dst, balance, int64(7)))
	assert.EqualValues(t, 7, dst.Balance())
}

func TestSetValue(t *testing.T) {
	t.Parallel()

	dst := &fixture.Account{}
	tags := []string{"a", "b"}

	require.NoError(t, fields.SetValue(dst, field(t, reflect.TypeFor[fixture.Account](), "Tags"), tags))
	assert.Equal(t, tags, dst.Tags)
	tags[0] = "changed"
	assert.Equal(t, "a", dst.Tags[0])

	status := field(t, reflect.TypeFor[fixture.Account](), "Status")
	require.NoError(t, fields.SetValue(dst, status, fixture.StatusBlocked))
	assert.Equal(t, fixture.StatusBlocked, dst.Status)

	err := fields.SetValue(dst, status, fixture.Status("UNKNOWN"))
	assert.ErrorIs(t, err, fields.ErrUnknownEnumConstant)
	assert.Equal(t, fixture.StatusBlocked, dst.Status)

	owner := field(t, reflect.TypeFor[fixture.Account](), "Owner")
	dst.Owner = fixture.NewPerson()
	require.NoError(t, fields.SetValue(dst, owner, nil))
	assert.Nil(t, dst.Owner)

	err = fields.SetValue(dst, owner, "not a person")
	assert.ErrorIs(t, err, fields.ErrIllegalAccess)

	err = fields.SetValue(dst, field(t, reflect.TypeFor[fixture.Account](), "Tags"), 3)
	assert.ErrorIs(t, err, fields.ErrIllegalAccess)

	light := field(t, reflect.TypeFor[fixture.Light](), "On")
	l := &fixture.Light{}
	require.NoError(t, fields.SetValue(l, light, true), "SetValue does not check the final flag")
	assert.True(t, l.On)
}

func TestGetValue(t *testing.T) {
	t.Parallel()

	member := fixture.Member{Person: fixture.Person{Name: "Alex"}}

	got, err := fields.GetValue(member, "Name")
	require.NoError(t, err)
	assert.Equal(t, "Alex", got)

	got, err = fields.GetValue(&member, "Gender")
	require.NoError(t, err)
	assert.Equal(t, fixture.Undefined, got)

	_, err = fields.GetValue(member, "Missing")
	assert.ErrorIs(t, err, fields.ErrNoSuchField)

	_, err = fields.GetValue(nil, "Name")
	assert.ErrorIs(t, err, fields.ErrIllegalAccess)

	_, err = fields.GetValue(fixture.Account{}, "balance")
	assert.ErrorIs(t, err, fields.ErrIllegalAccess)
}

func TestCopyOfEnumValue(t *testing.T) {
	t.Parallel()

	gender := reflect.TypeFor[fixture.Gender]()

	assert.Equal(t, fixture.Male, fields.CopyOfEnumValue(fixture.Male, gender))
	assert.Equal(t, fixture.StatusActive, fields.CopyOfEnumValue(fixture.StatusActive, reflect.TypeFor[fixture.Status]()))
	assert.Nil(t, fields.CopyOfEnumValue(fixture.Male, reflect.TypeFor[int]()))
	assert.Nil(t, fields.CopyOfEnumValue(nil, gender))
	assert.Nil(t, fields.CopyOfEnumValue("NOT_A_GENDER", gender))
	assert.Equal(t, fixture.Female, fields.CopyOfEnumValue("FEMALE", gender), "constants are matched by name")

	s := &fields.Synchronizer{Registry: registry.New()}
	assert.Nil(t, s.CopyOfEnumValue(fixture.Male, gender), "the enum is unknown to an empty registry")
}

func TestCell(t *testing.T) {
	t.Parallel()

	c := fields.NewCell(1)
	assert.Equal(t, 1, c.Get())

	c.Set(2)
	assert.Equal(t, 2, c.Swap(3))
	assert.Equal(t, 3, c.Get())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set(c.Get() + 1)
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, c.Get(), 4)
}

func ExampleCopyValue() {
	src := &fixture.Light{On: true, Level: 9}
	dst := &fixture.Light{}

	for _, f := range fields.Declared(reflect.TypeFor[fixture.Light]()) {
		outcome, err := fields.CopyValue(src, dst, f)
		fmt.Println(f.Name, outcome, err)
	}
	fmt.Printf("%+v\n", *dst)
	// Output:
	// On skipped final <nil>
	// Level copied <nil>
	// {On:false Level:9}
}
