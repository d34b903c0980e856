// Package fixture holds the model types shared by the package tests and the
// static analyzer tests.
package fixture

import (
	"time"

	"reflectkit/registry"
)

// Gender is a registered enumeration.
type Gender int

const (
	Undefined Gender = iota
	Female
	Male
)

func (g Gender) String() string {
	switch g {
	case Female:
		return "FEMALE"
	case Male:
		return "MALE"
	default:
		return "UNDEFINED"
	}
}

// Status is a string-kind enumeration.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
)

func (s Status) String() string { return string(s) }

// Person is a plain model with a generated-code artifact field.
type Person struct {
	XXX_sizecache int32 `json:"-"`

	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Gender   Gender `json:"gender"`
	About    string `json:"about,omitempty"`
	Married  bool   `json:"married"`
}

// NewPerson returns a Person with its defaults applied.
func NewPerson() *Person {
	return &Person{
		Name:    "",
		Gender:  Undefined,
		Married: false,
	}
}

// NewNamedPerson returns a Person with the given name.
func NewNamedPerson(name string) *Person {
	p := NewPerson()
	p.Name = name
	return p
}

// GetName returns the name.
func (p *Person) GetName() string { return p.Name }

// SetName sets the name.
func (p *Person) SetName(name string) { p.Name = name }

// IsMarried reports the marital status.
func (p *Person) IsMarried() bool { return p.Married }

// SetMarried sets the marital status.
func (p *Person) SetMarried(married bool) { p.Married = married }

// Member extends Person.
type Member struct {
	Person

	XXX_sizecache  int32 `json:"-"`
	DateOfBirth    time.Time
	DateOfMarriage time.Time
}

// PremiumMember extends Member.
type PremiumMember struct {
	*Member

	XXX_sizecache int32 `json:"-"`
	Credits       int
}

// Light has an immutable field.
type Light struct {
	On    bool `field:"final"`
	Level int
}

// PrimitiveArrays has one slice per primitive kind.
type PrimitiveArrays struct {
	Bools    []bool
	Bytes    []byte
	Runes    []rune
	Shorts   []int16
	Ints     []int
	Longs    []int64
	Floats   []float32
	Doubles  []float64
	Boxed    []*float64
	Fixed    [2]int
	Statuses []Status
}

// Account mixes array, enum, pointer and unexported fields.
type Account struct {
	Owner   *Person
	Tags    []string
	Scores  [3]int
	Status  Status
	Gender  Gender
	Limits  map[string]int
	balance int64
	_       [4]byte
}

// NewAccount returns an Account with the given balance.
func NewAccount(owner *Person, balance int64) *Account {
	return &Account{Owner: owner, Status: StatusActive, balance: balance}
}

// Balance returns the unexported balance.
func (a *Account) Balance() int64 { return a.balance }

func init() {
	registry.MustRegisterEnum(Undefined, Female, Male)
	registry.MustRegisterEnum(StatusActive, StatusBlocked)
	registry.MustRegister[Person]()
	registry.MustRegister[Member]()
	registry.MustRegister[PremiumMember]()
	registry.MustRegister[Light]()
	registry.MustRegister[Account]()
}
