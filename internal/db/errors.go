package db

// Op names the read that failed, for error context.
const (
	OpListJobs       = "SELECT job_postings"
	OpListJobBriefs  = "SELECT job_postings(id, title)"
	OpListSeekers    = "SELECT seeker_profiles JOIN profiles"
	OpListSummaries  = "SELECT seeker_profiles(profile_id, bio, skills)"
	OpSeekerExists   = "SELECT seeker_profiles EXISTS"
	OpProfileByUser  = "SELECT profiles BY user_id"
	OpSampleProfiles = "SELECT profiles LIMIT"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
