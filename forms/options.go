package forms

// Option is one selectable token within a multi-select step. Custom
// categories created at runtime use the same shape.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// NeedsAssessmentTotalSteps is the number of wizard steps in the First
// Aid Needs Assessment.
const NeedsAssessmentTotalSteps = 14

// Predefined option sets. Detail fields are keyed `${value}Details`;
// resource lists are keyed `${value}Resources`.

var WorkerConditionOptions = []Option{
	{Value: "loneWorking", Label: "Lone working"},
	{Value: "remoteSites", Label: "Remote or rural sites"},
	{Value: "shiftWork", Label: "Shift or night work"},
	{Value: "youngWorkers", Label: "Young workers or trainees"},
	{Value: "publicFacing", Label: "Work with members of the public"},
}

var LowLevelHazardOptions = []Option{
	{Value: "chemicals", Label: "Chemicals and cleaning agents"},
	{Value: "manualHandling", Label: "Manual handling"},
	{Value: "slipsTrips", Label: "Slips, trips and falls"},
	{Value: "displayScreens", Label: "Display screen equipment"},
	{Value: "hotSurfaces", Label: "Hot surfaces and liquids"},
	{Value: "sharpTools", Label: "Sharp hand tools"},
}

var HighLevelHazardOptions = []Option{
	{Value: "workAtHeight", Label: "Work at height"},
	{Value: "confinedSpaces", Label: "Confined spaces"},
	{Value: "electricalSystems", Label: "Live electrical systems"},
	{Value: "heavyMachinery", Label: "Heavy machinery"},
	{Value: "hazardousSubstances", Label: "Hazardous substances (COSHH)"},
}

var HealthConditionOptions = []Option{
	{Value: "asthma", Label: "Asthma or respiratory conditions"},
	{Value: "diabetes", Label: "Diabetes"},
	{Value: "epilepsy", Label: "Epilepsy"},
	{Value: "heartConditions", Label: "Heart conditions"},
	{Value: "allergies", Label: "Severe allergies"},
}

var InjuryHistoryOptions = []Option{
	{Value: "cutsLacerations", Label: "Cuts and lacerations"},
	{Value: "burnsScalds", Label: "Burns and scalds"},
	{Value: "fractures", Label: "Fractures"},
	{Value: "eyeInjuries", Label: "Eye injuries"},
	{Value: "strainsSprains", Label: "Strains and sprains"},
}

var ResourceCategoryOptions = []Option{
	{Value: "firstAidKits", Label: "First aid kits"},
	{Value: "defibrillators", Label: "Defibrillators (AED)"},
	{Value: "eyewashStations", Label: "Eyewash stations"},
	{Value: "firstAidRooms", Label: "First aid rooms"},
	{Value: "emergencyShowers", Label: "Emergency showers"},
	{Value: "burnsKits", Label: "Burns kits"},
}

// StepDescriptor ties a wizard step to the fields it owns and its
// validator.
type StepDescriptor struct {
	Step     int
	Title    string
	Fields   []string
	Validate ValidatorFunc
}

// NeedsAssessmentSteps is the ordered step set for the First Aid Needs
// Assessment, indexed by step number.
var NeedsAssessmentSteps = map[int]StepDescriptor{
	1: {
		Step:     1,
		Title:    "Assessment details",
		Fields:   []string{"assessmentTitle", "assessorName", "assessmentDate", "siteLocation"},
		Validate: ValidateAssessmentDetails,
	},
	2: {
		Step:     2,
		Title:    "Workplace profile",
		Fields:   []string{"natureOfBusiness", "numberOfEmployees", "shiftPatterns"},
		Validate: ValidateWorkplaceProfile,
	},
	3: {
		Step:     3,
		Title:    "Workforce factors",
		Fields:   []string{"workerConditions"},
		Validate: ValidateWorkerConditions,
	},
	4: {
		Step:     4,
		Title:    "Low level hazards",
		Fields:   []string{"lowLevelHazards"},
		Validate: ValidateLowLevelHazards,
	},
	5: {
		Step:     5,
		Title:    "High level hazards",
		Fields:   []string{"highLevelHazards"},
		Validate: ValidateHighLevelHazards,
	},
	6: {
		Step:     6,
		Title:    "Health conditions",
		Fields:   []string{"healthConditions"},
		Validate: ValidateHealthConditions,
	},
	7: {
		Step:     7,
		Title:    "Injury history",
		Fields:   []string{"pastInjuries"},
		Validate: ValidateInjuryHistory,
	},
	8: {
		Step:     8,
		Title:    "Mental health provision",
		Fields:   []string{"mentalHealthSupport", "mentalHealthDetails"},
		Validate: ValidateMentalHealthProvision,
	},
	9: {
		Step:     9,
		Title:    "First aid personnel",
		Fields:   []string{"appointedPersonRequired", "appointedPersonList", "firstAiderRequired", "firstAiderList"},
		Validate: ValidateFirstAidPersonnel,
	},
	10: {
		Step:     10,
		Title:    "Additional training",
		Fields:   []string{"additionalTrainingRequired", "additionalTrainingDetails"},
		Validate: ValidateTraining,
	},
	11: {
		Step:     11,
		Title:    "First aid resources",
		Fields:   []string{"resourceCategories", "customResourceCategories"},
		Validate: ValidateResources,
	},
	12: {
		Step:     12,
		Title:    "Off-site and travelling work",
		Fields:   []string{"offSiteWork", "offSiteArrangements"},
		Validate: ValidateOffSiteWork,
	},
	13: {
		Step:     13,
		Title:    "Review schedule",
		Fields:   []string{"reviewDate", "reviewFrequency"},
		Validate: ValidateReviewSchedule,
	},
	14: {
		Step:     14,
		Title:    "Declaration",
		Fields:   []string{"declarationConfirmed", "additionalNotes"},
		Validate: ValidateDeclaration,
	},
}
