// Package role holds filmmaker roles and the collaboration compatibility table.
package role

// Role is a declared filmmaker role.
type Role string

// Known roles.
const (
	Director        Role = "Director"
	Actor           Role = "Actor"
	Cinematographer Role = "Cinematographer"
	Editor          Role = "Editor"
	Producer        Role = "Producer"
	Writer          Role = "Writer"
)

// DefaultCompatibility applies when either role is unset or the pair is not in the table.
const DefaultCompatibility = 10

// MaxCompatibility is the upper bound of any table entry.
const MaxCompatibility = 40

type pair struct {
	from Role
	to   Role
}

// compatibility is directional: the requester's role comes first.
// Same-role pairs are intentionally absent and fall back to the default.
var compatibility = map[pair]int{
	{Director, Actor}:           35,
	{Director, Cinematographer}: 30,
	{Director, Editor}:          25,
	{Director, Producer}:        30,
	{Director, Writer}:          25,

	{Actor, Director}:        35,
	{Actor, Cinematographer}: 20,
	{Actor, Editor}:          15,
	{Actor, Producer}:        20,
	{Actor, Writer}:          15,

	{Cinematographer, Director}: 30,
	{Cinematographer, Actor}:    20,
	{Cinematographer, Editor}:   25,
	{Cinematographer, Producer}: 20,
	{Cinematographer, Writer}:   15,

	{Editor, Director}:        25,
	{Editor, Actor}:           15,
	{Editor, Cinematographer}: 25,
	{Editor, Producer}:        20,
	{Editor, Writer}:          20,

	{Producer, Director}:        30,
	{Producer, Actor}:           20,
	{Producer, Cinematographer}: 20,
	{Producer, Editor}:          20,
	{Producer, Writer}:          25,

	{Writer, Director}:        25,
	{Writer, Actor}:           15,
	{Writer, Cinematographer}: 15,
	{Writer, Editor}:          20,
	{Writer, Producer}:        25,
}

// Compatibility returns the collaboration score for a requester role and a candidate role.
func Compatibility(from, to Role) int {
	if from == "" || to == "" {
		return DefaultCompatibility
	}
	if v, ok := compatibility[pair{from: from, to: to}]; ok {
		return v
	}
	return DefaultCompatibility
}
