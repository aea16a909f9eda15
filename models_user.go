package calcom

// WeekStart is the first day of a user's week.
type WeekStart string

const (
	WeekStartSunday    WeekStart = "SUNDAY"
	WeekStartMonday    WeekStart = "MONDAY"
	WeekStartTuesday   WeekStart = "TUESDAY"
	WeekStartWednesday WeekStart = "WEDNESDAY"
	WeekStartThursday  WeekStart = "THURSDAY"
	WeekStartFriday    WeekStart = "FRIDAY"
	WeekStartSaturday  WeekStart = "SATURDAY"
)

// Theme is a user's default booking page theme.
type Theme string

const (
	ThemeDark  Theme = "DARK"
	ThemeLight Theme = "LIGHT"
)

// TimeFormat is a user's clock format.
type TimeFormat string

const (
	TimeFormat12h TimeFormat = "TWELVE"
	TimeFormat24h TimeFormat = "TWENTY_FOUR"
)

// Locale is a user's interface language.
type Locale string

// UserEdit is the body of PATCH /users/{id}.
type UserEdit struct {
	Email          Opt[string]     `json:"email" doc:"Email that belongs to the user being edited"`
	Username       Opt[string]     `json:"username" doc:"Username for the user being edited"`
	BrandColor     Opt[string]     `json:"brandColor" doc:"The user's brand color"`
	DarkBrandColor Opt[string]     `json:"darkBrandColor" doc:"The user's brand color for dark mode"`
	WeekStart      Opt[WeekStart]  `json:"weekStart" enum:"SUNDAY,MONDAY,TUESDAY,WEDNESDAY,THURSDAY,FRIDAY,SATURDAY" doc:"Start of the week"`
	TimeZone       Opt[string]     `json:"timeZone" doc:"The user's time zone"`
	HideBranding   Opt[bool]       `json:"hideBranding" doc:"Remove branding from the user's calendar page"`
	Theme          Opt[Theme]      `json:"theme" enum:"DARK,LIGHT" nullable:"true" doc:"Default theme for the user"`
	TimeFormat     Opt[TimeFormat] `json:"timeFormat" enum:"TWELVE,TWENTY_FOUR" doc:"The user's time format"`
	Locale         Opt[Locale]     `json:"locale" enum:"EN,FR,IT,RU,ES,DE,PT,RO,NL,PT_BR,ES_419,KO,JA,PL,AR,IW,ZH_CH,ZH_TW,CS,SR,SV,VI" doc:"The user's locale"`
	Avatar         Opt[string]     `json:"avatar" nullable:"true" doc:"The user's avatar, in base64 format"`
}

func (UserEdit) ModelName() string { return "UserEdit" }

func (m UserEdit) MarshalJSON() ([]byte, error) { return marshalModel(m) }

func (m *UserEdit) UnmarshalJSON(b []byte) error { return unmarshalModel(b, m) }
