package syllabus

var sampleValues = map[FieldID]string{
	CourseTitle:           "Strategic Marketing Management",
	CourseNumber:          "MKTG-GB.2334.01",
	Term:                  "Spring 2025",
	Credits:               "3",
	Prerequisites:         "Core Marketing (MKTG-GB.2109) or equivalent",
	InstructorName:        "Dr. Jane Smith",
	OfficeHours:           "Tuesdays and Thursdays, 3:30-5:00 PM, Room 7-65, or by appointment",
	ClassSchedule:         "MW 1:30-2:50 PM, Room KMC 4-80",
	CourseDescription:     "This course examines strategic marketing decisions facing firms in competitive markets. Students will learn frameworks for analyzing market opportunities, developing positioning strategies, and designing marketing programs. The course emphasizes both analytical rigor and practical application through case studies and simulations.",
	LearningOutcomes:      "At the conclusion of this course, students will be able to:\n- Analyze competitive market dynamics and identify strategic opportunities\n- Develop effective market segmentation and targeting strategies\n- Create compelling value propositions and positioning strategies\n- Design integrated marketing programs across the 4Ps\n- Measure and optimize marketing performance using key metrics",
	CommunicationStrategy: "I am available during office hours and by appointment. Please email me for questions. I typically respond within 24 hours on weekdays. For urgent matters, please note 'URGENT' in the subject line.",
	TechnicalRequirements: "Students will need access to:\n- The learning platform for course materials and assignments\n- Microsoft Excel or Google Sheets for case analysis\n- Zoom for any virtual sessions\n- The course pack of case studies",
	AssignmentTypes:       "1. Case Analysis (Individual): 3 written case analyses, 3-5 pages each\n2. Group Project: Strategic marketing plan for a real company\n3. Midterm Exam: In-class exam covering frameworks and concepts\n4. Class Participation: Active engagement in case discussions",
	GradingPercentages:    "Case Analyses: 30% (10% each)\nGroup Project: 30%\nMidterm Exam: 25%\nClass Participation: 15%",
	DueDatesPolicy:        "All assignments are due by 11:59 PM on the specified date. Late submissions will be penalized 10% per day. Extensions may be granted for documented emergencies with advance notice.",
	AcademicIntegrity:     "standard",
	IntegrityOfCredit:     "Students will meet 2x a week for 1 hour 20 minutes each session for 15 weeks for this 3-credit course, totaling 40 contact hours.",
	GradingGuidelines:     "core",
	StudentWellness:       "comprehensive",
	ReligiousObservances:  "accommodating",
	ElectronicDevices:     "laptops-allowed",
	AIGuidance:            "limited",
}

var sampleOutline = []struct {
	title string
	days  [][2]string
}{
	{"Module 1: Foundations", [][2]string{
		{"Week 1: Introduction to Strategic Marketing", "Syllabus review\nRead Chapter 1"},
		{"Week 2-3: Market Analysis and Segmentation", "Read Chapters 2 and 3\nCase 1 handed out"},
	}},
	{"Module 2: Strategy", [][2]string{
		{"Week 4-5: Positioning and Value Proposition Design", "Read Chapter 4\nCase 1 due"},
		{"Week 6-7: Product and Pricing Strategies", "Read Chapters 5 and 6"},
		{"Week 8: Midterm Exam", "In-class exam"},
	}},
	{"Module 3: Execution", [][2]string{
		{"Week 9-10: Distribution and Channel Management", "Read Chapter 7\nCase 2 due"},
		{"Week 11-12: Marketing Communications", "Read Chapter 8"},
		{"Week 13-14: Digital Marketing and Analytics", "Read Chapter 9\nCase 3 due"},
		{"Week 15: Group Presentations and Course Wrap-up", "Final presentations"},
	}},
}

// SampleState returns a fully filled example syllabus, based on the
// registry defaults.
func SampleState(reg *Registry) *FormState {
	s := reg.NewState()
	for id, v := range sampleValues {
		s.Set(id, v)
	}

	o := &Outline{}
	for _, m := range sampleOutline {
		mod := &Module{
			ID:        newModuleID(),
			Title:     m.title,
			ClassDays: make([]ClassDay, len(m.days)),
		}
		for i, d := range m.days {
			mod.ClassDays[i] = ClassDay{Title: d[0], Content: d[1]}
		}
		o.Modules = append(o.Modules, mod)
	}
	s.Outline = o
	return s
}
