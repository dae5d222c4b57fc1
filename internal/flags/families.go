package flags

// Mentoring levels a mentor is willing to take on.
const (
	LevelStudent   Flags = 1
	LevelJunior    Flags = 2
	LevelMidLevel  Flags = 4
	LevelSenior    Flags = 8
	LevelLead      Flags = 16
	LevelExecutive Flags = 32
)

// Payment arrangements a mentor offers.
const (
	PaymentFree             Flags = 1
	PaymentPaid             Flags = 2
	PaymentSlidingScale     Flags = 4
	PaymentFirstSessionFree Flags = 8
)

// Expertise domains.
const (
	DomainFrontend        Flags = 1
	DomainBackend         Flags = 2
	DomainMobile          Flags = 4
	DomainDevOps          Flags = 8
	DomainData            Flags = 16
	DomainMachineLearning Flags = 32
	DomainDesign          Flags = 64
	DomainProduct         Flags = 128
	DomainSecurity        Flags = 256
	DomainCareer          Flags = 512
)

// Preset expertise topics (free-text topics live on the profile itself).
const (
	TopicResumeReview      Flags = 1
	TopicInterviewPrep     Flags = 2
	TopicSystemDesign      Flags = 4
	TopicCodeReview        Flags = 8
	TopicCareerGrowth      Flags = 16
	TopicLeadership        Flags = 32
	TopicOpenSource        Flags = 64
	TopicFreelancing       Flags = 128
	TopicPublicSpeaking    Flags = 256
	TopicSalaryNegotiation Flags = 512
)

// MentorLevels is the mentoring-level family in declaration order.
var MentorLevels = Family{
	{LevelStudent, "Student"},
	{LevelJunior, "Junior"},
	{LevelMidLevel, "Mid-level"},
	{LevelSenior, "Senior"},
	{LevelLead, "Lead"},
	{LevelExecutive, "Executive"},
}

// PaymentTypes is the payment-arrangement family.
var PaymentTypes = Family{
	{PaymentFree, "Free"},
	{PaymentPaid, "Paid"},
	{PaymentSlidingScale, "Sliding scale"},
	{PaymentFirstSessionFree, "First session free"},
}

// ExpertiseDomains is the expertise-domain family.
var ExpertiseDomains = Family{
	{DomainFrontend, "Frontend"},
	{DomainBackend, "Backend"},
	{DomainMobile, "Mobile"},
	{DomainDevOps, "DevOps"},
	{DomainData, "Data"},
	{DomainMachineLearning, "Machine Learning"},
	{DomainDesign, "Design"},
	{DomainProduct, "Product"},
	{DomainSecurity, "Security"},
	{DomainCareer, "Career"},
}

// ExpertiseTopics is the preset-topic family.
var ExpertiseTopics = Family{
	{TopicResumeReview, "Resume review"},
	{TopicInterviewPrep, "Interview prep"},
	{TopicSystemDesign, "System design"},
	{TopicCodeReview, "Code review"},
	{TopicCareerGrowth, "Career growth"},
	{TopicLeadership, "Leadership"},
	{TopicOpenSource, "Open source"},
	{TopicFreelancing, "Freelancing"},
	{TopicPublicSpeaking, "Public speaking"},
	{TopicSalaryNegotiation, "Salary negotiation"},
}
