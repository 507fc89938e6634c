package rag

// CareerAdviceCorpus returns the built-in tips used for career suggestions.
func CareerAdviceCorpus() Corpus { return careerAdvice }

// TimetableResourcesCorpus returns the built-in study tips used for timetables.
func TimetableResourcesCorpus() Corpus { return timetableResources }

var careerAdvice = Corpus{
	// Technology and business
	{ID: "ca1", Keywords: []string{"software", "python", "web", "javascript", "coding", "developer", "engineer", "full-stack", "front-end", "back-end"}, Content: "Expert Tip for Software/Web Developers: Build a diverse portfolio on GitHub, showcasing various projects. Actively contribute to open-source or create your own projects to gain practical experience and demonstrate your skills to potential employers. Specialize in a niche like AI integration, cybersecurity, or a specific framework to stand out."},
	{ID: "ca2", Keywords: []string{"data", "analytics", "machine learning", "ai", "scientist", "analyst", "big data"}, Content: "Expert Tip for Data Professionals: Master Python and R, along with SQL. Gain experience with cloud platforms (AWS, Azure, GCP) as many data roles are cloud-based. Participate in Kaggle competitions and build projects that showcase data cleaning, analysis, visualization, and model building."},
	{ID: "ca3", Keywords: []string{"design", "ux", "ui", "product", "designer", "user experience", "user interface"}, Content: "Expert Tip for Designers (UX/UI/Product): Develop a strong portfolio with detailed case studies explaining your design process, user research, iteration, and the impact of your work. Master tools like Figma, Sketch, or Adobe XD. Understand user-centered design principles deeply."},
	{ID: "ca4", Keywords: []string{"general", "tech", "career", "professional", "networking", "job search"}, Content: "General Career Tip: Networking is crucial. Attend industry events (virtual or in-person), join relevant online communities (LinkedIn groups, Discord servers), and don't hesitate to reach out for informational interviews. A strong professional network can open doors."},
	{ID: "ca5", Keywords: []string{"business", "management", "manager", "leadership", "strategy"}, Content: "Expert Tip for Management Roles: Focus on developing strong leadership, communication, and decision-making skills. Quantify your achievements in previous roles with specific metrics and impact. Continuous learning in areas like project management and strategic thinking is vital."},
	{ID: "ca6", Keywords: []string{"marketing", "digital marketing", "seo", "sem", "content creation", "social media"}, Content: "Expert Tip for Marketers: Stay updated with the latest digital marketing trends and tools. Develop skills in SEO, SEM, content marketing, social media strategy, and data analytics to measure campaign effectiveness. A portfolio of successful campaigns is key."},
	{ID: "ca7", Keywords: []string{"sales", "business development", "account manager", "negotiation"}, Content: "Expert Tip for Sales Professionals: Master the art of communication, negotiation, and relationship building. Understand your product/service deeply and be ableto articulate its value proposition clearly. Track record of meeting or exceeding targets is crucial."},
	{ID: "ca8", Keywords: []string{"finance", "analyst", "investment", "accounting", "auditor", "cfa", "cpa"}, Content: "Expert Tip for Finance/Accounting: Pursue relevant certifications (CFA, CPA). Develop strong analytical skills and proficiency in financial modeling software (Excel, etc.). Attention to detail and ethical conduct are paramount."},
	{ID: "ca9", Keywords: []string{"project manager", "product manager", "agile", "scrum", "pmp"}, Content: "Expert Tip for Project/Product Managers: Get certified (PMP, Agile certifications like CSPO or CSM). Develop excellent organizational, communication, and stakeholder management skills. Experience with project management tools (Jira, Asana, Trello) is essential."},
	{ID: "ca10", Keywords: []string{"consultant", "advisory", "management consulting", "it consulting"}, Content: "Expert Tip for Consultants: Develop strong problem-solving, analytical, and presentation skills. Specialize in a particular industry or service line. Build a network and showcase your expertise through white papers or speaking engagements."},

	// Healthcare
	{ID: "hc1", Keywords: []string{"nurse", "nursing", "registered nurse", "healthcare", "medical", "patient care"}, Content: "Expert Tip for Nursing: Specialize in an area like pediatrics, oncology, critical care, or psychiatric nursing to increase demand. Continuous education, certifications (e.g., CCRN, CPN), and strong patient advocacy skills are key."},
	{ID: "hc2", Keywords: []string{"doctor", "physician", "medical doctor", "surgeon", "specialist"}, Content: "Expert Tip for Physicians: Consider a fellowship for sub-specialization after residency. Building strong patient communication skills, empathy, and keeping up with medical advancements are crucial for a successful practice."},
	{ID: "hc3", Keywords: []string{"therapist", "physical therapy", "occupational therapy", "speech therapist", "rehabilitation"}, Content: "Expert Tip for Therapists: Stay updated on evidence-based practices and new therapeutic technologies. Specializing (e.g., sports therapy, neurorehabilitation, pediatrics) can create niche opportunities. Strong interpersonal skills are vital."},
	{ID: "hc4", Keywords: []string{"pharmacist", "pharmacy", "medication management", "clinical pharmacist"}, Content: "Expert Tip for Pharmacists: Develop strong patient counseling skills and knowledge of pharmacotherapy. Opportunities are expanding into clinical pharmacy, medication therapy management, and specialized areas like oncology or infectious diseases."},
	{ID: "hc5", Keywords: []string{"medical assistant", "healthcare support", "clinical assistant", "patient intake"}, Content: "Expert Tip for Medical Assistants: Certification (e.g., CMA, RMA) significantly boosts job prospects. Proficiency in Electronic Health Record (EHR) systems and excellent patient interaction skills are highly valued."},
	{ID: "hc6", Keywords: []string{"dentist", "dental surgeon", "oral health"}, Content: "Expert Tip for Dentists: Stay updated with advancements in dental technology and procedures. Consider specialization (e.g., orthodontics, periodontics). Strong patient communication and business management skills (for private practice) are beneficial."},
	{ID: "hc7", Keywords: []string{"psychologist", "mental health", "counselor", "therapist"}, Content: "Expert Tip for Psychologists/Counselors: Obtain appropriate licensure. Specialize in areas like clinical psychology, counseling psychology, or neuropsychology. Continuous professional development and strong ethical grounding are essential."},
	{ID: "hc8", Keywords: []string{"veterinarian", "vet", "animal health", "animal doctor"}, Content: "Expert Tip for Veterinarians: Specialize in small animals, large animals, exotics, or a specific medical area like surgery or internal medicine. Strong empathy for animals and communication skills with pet owners are crucial."},

	// Education
	{ID: "edu1", Keywords: []string{"teacher", "k-12", "educator", "pedagogy", "curriculum development", "classroom management"}, Content: "Expert Tip for K-12 Teachers: Gain experience with modern classroom technology, inclusive education practices, and differentiated instruction. Consider a master's degree or certifications in specialized areas like special education or ESL."},
	{ID: "edu2", Keywords: []string{"professor", "lecturer", "higher education", "academic researcher", "postdoctoral"}, Content: "Expert Tip for Academics/Professors: Focus on publishing in high-impact journals, securing research grants, and effective teaching. Strong presentation skills for conferences and mentoring abilities are also essential."},
	{ID: "edu3", Keywords: []string{"librarian", "library science", "information management", "archivist"}, Content: "Expert Tip for Librarians/Archivists: Develop digital literacy skills, knowledge of database management, and information retrieval techniques. Specializing (e.g., academic, public, digital, special collections) can be beneficial."},
	{ID: "edu4", Keywords: []string{"instructional designer", "e-learning developer", "edtech", "corporate trainer"}, Content: "Expert Tip for Instructional Designers: Master authoring tools (e.g., Articulate 360, Adobe Captivate, Camtasia) and understand adult learning theories (andragogy). A portfolio demonstrating diverse project types is crucial."},
	{ID: "edu5", Keywords: []string{"school counselor", "guidance counselor", "academic advisor"}, Content: "Expert Tip for School Counselors: Stay current with college admission trends, career development resources, and mental health support for students. Strong empathy, active listening, and communication skills are paramount."},

	// Arts, media and entertainment
	{ID: "art1", Keywords: []string{"graphic designer", "visual communication", "branding", "adobe creative suite"}, Content: "Expert Tip for Graphic Designers: Build a diverse portfolio showcasing various styles (branding, web, print) and projects. Proficiency in Adobe Creative Suite (Photoshop, Illustrator, InDesign) is standard. Understanding typography and visual hierarchy is key."},
	{ID: "art2", Keywords: []string{"writer", "author", "copywriter", "content creator", "editor", "journalist", "blogger"}, Content: "Expert Tip for Writers/Editors: Develop a niche or specialty (e.g., technical writing, fiction, marketing copy). Build a strong portfolio of published work or well-crafted samples. Master grammar, style, and storytelling techniques."},
	{ID: "art3", Keywords: []string{"musician", "instrumentalist", "composer", "singer", "music producer", "sound engineer"}, Content: "Expert Tip for Musicians/Producers: Practice consistently, collaborate, and network within the music community. Understanding music theory, production software (DAWs), and marketing yourself effectively are very helpful."},
	{ID: "art4", Keywords: []string{"actor", "actress", "performing arts", "theatre", "film", "voice actor"}, Content: "Expert Tip for Actors: Get formal training (acting classes, workshops) and build a diverse portfolio of roles (headshots, demo reel). Networking, persistence, and auditioning skills are key in this competitive field."},
	{ID: "art5", Keywords: []string{"filmmaker", "director", "cinematographer", "video editor", "producer"}, Content: "Expert Tip for Filmmakers: Gain hands-on experience in various roles (writing, directing, editing, cinematography). Create short films to build a portfolio. Understand storytelling, visual composition, and project management."},
	{ID: "art6", Keywords: []string{"animator", "3d artist", "vfx artist", "motion graphics designer"}, Content: "Expert Tip for Animators/VFX Artists: Master industry-standard software (e.g., Maya, Blender, Houdini, After Effects) and create a compelling demo reel showcasing your specific skills. Specialization (e.g., character animation, rigging, compositing) is often advantageous."},
	{ID: "art7", Keywords: []string{"dancer", "choreographer", "dance instructor", "dance therapist"}, Content: "Expert Tip for Dancers/Choreographers: Consistent training and versatility in multiple dance styles are crucial. Networking with companies and schools, creating a strong performance/choreography reel, and developing teaching skills can open diverse opportunities."},
	{ID: "art8", Keywords: []string{"photographer", "videographer", "photojournalist"}, Content: "Expert Tip for Photographers/Videographers: Develop a unique style and a strong portfolio. Master technical aspects (lighting, composition, editing software). Specializing in a niche (e.g., portrait, wedding, commercial, documentary) can help build a client base."},
	{ID: "art9", Keywords: []string{"fashion designer", "textile designer", "merchandiser"}, Content: "Expert Tip for Fashion Designers: Develop strong design skills, understand garment construction, and stay updated on trends. Create a portfolio showcasing your unique vision. Internships and industry connections are very valuable."},
	{ID: "art10", Keywords: []string{"architect", "interior designer", "urban designer"}, Content: "Expert Tip for Architects/Interior Designers: Master CAD software (AutoCAD, Revit, SketchUp) and develop a strong portfolio. Understand building codes, materials, and sustainable design practices. Licensure is typically required for architects."},

	// Trades
	{ID: "trd1", Keywords: []string{"electrician", "electrical technician", "wiring", "journeyman electrician"}, Content: "Expert Tip for Electricians: Complete a formal apprenticeship and obtain state/local licensing. Specializing in areas like industrial automation, renewable energy systems, or smart home technology can increase opportunities."},
	{ID: "trd2", Keywords: []string{"plumber", "pipefitter", "steamfitter"}, Content: "Expert Tip for Plumbers: Apprenticeships and licensing are essential. Knowledge of water conservation systems, backflow prevention, and new piping materials is a plus. Good problem-solving skills are crucial."},
	{ID: "trd3", Keywords: []string{"hvac technician", "heating ventilation air conditioning", "refrigeration mechanic"}, Content: "Expert Tip for HVAC Techs: Certifications (e.g., EPA Section 608, NATE) are often required. Skills in system diagnostics, customer service, and knowledge of energy-efficient systems are important."},
	{ID: "trd4", Keywords: []string{"carpenter", "woodworker", "framer", "finish carpenter", "cabinet maker"}, Content: "Expert Tip for Carpenters: Develop a strong understanding of blueprints, building codes, and various wood types. Precision and attention to detail are key. Specializing in areas like custom cabinetry, historical restoration, or framing can be beneficial."},
	{ID: "trd5", Keywords: []string{"chef", "cook", "culinary artist", "pastry chef", "sous chef"}, Content: "Expert Tip for Chefs: Gain experience in various kitchen roles, starting from entry-level if necessary. Culinary school provides a strong foundation, but hands-on experience, creativity, and ability to work under pressure are paramount."},
	{ID: "trd6", Keywords: []string{"automotive technician", "mechanic", "auto repair specialist", "diesel mechanic"}, Content: "Expert Tip for Automotive Techs: ASE certifications are highly valued. Staying updated with new vehicle technologies (EVs, hybrids, ADAS) through continuous training is crucial for long-term success."},
	{ID: "trd7", Keywords: []string{"welder", "fabricator", "pipe welder"}, Content: "Expert Tip for Welders: Obtain certifications from organizations like the AWS (American Welding Society). Develop proficiency in various welding processes (MIG, TIG, Stick). Strong attention to safety and blueprint reading are essential."},
	{ID: "trd8", Keywords: []string{"machinist", "cnc operator", "tool and die maker"}, Content: "Expert Tip for Machinists: Develop precision measurement skills and proficiency in operating CNC machines and traditional machine tools. Ability to read complex blueprints and understand G-code is crucial."},

	// Public service and non-profit
	{ID: "pub1", Keywords: []string{"social worker", "clinical social worker", "case manager", "community outreach"}, Content: "Expert Tip for Social Workers: Obtain the necessary licensure (e.g., LSW, LCSW). Specializing in a particular population (e.g., children, elderly, mental health, substance abuse) can be fulfilling. Strong empathy and advocacy skills are critical."},
	{ID: "pub2", Keywords: []string{"urban planner", "city planner", "regional planner", "transportation planner"}, Content: "Expert Tip for Urban Planners: Develop strong analytical, GIS (Geographic Information Systems) mapping, and public presentation skills. Understanding public policy, environmental regulations, and community engagement processes is essential."},
	{ID: "pub3", Keywords: []string{"firefighter", "emergency medical technician", "paramedic", "fire safety"}, Content: "Expert Tip for Firefighters/EMTs: Maintain peak physical condition and complete rigorous training programs. EMT/Paramedic certification is often required or highly beneficial for firefighters. Strong decision-making skills under pressure are vital."},
	{ID: "pub4", Keywords: []string{"police officer", "law enforcement officer", "detective", "criminal justice"}, Content: "Expert Tip for Police Officers: Focus on community policing principles, de-escalation techniques, and ethical conduct. A degree in criminal justice or related field can be advantageous. Physical fitness and strong moral character are essential."},
	{ID: "pub5", Keywords: []string{"nonprofit manager", "fundraising director", "program director", "grant writer"}, Content: "Expert Tip for Non-Profit Managers: Develop strong skills in grant writing, fundraising, donor relations, volunteer management, and program evaluation. Passion for the organization's mission and strong leadership are key to success."},
	{ID: "pub6", Keywords: []string{"politician", "public official", "legislator", "campaign manager"}, Content: "Expert Tip for Public Office/Politics: Develop strong public speaking, debate, and policy analysis skills. Build a strong community network and understand campaign finance and strategy. Resilience and dedication are crucial."},

	// Science and research
	{ID: "sci1", Keywords: []string{"biologist", "ecologist", "zoologist", "botanist", "marine biologist", "conservation scientist"}, Content: "Expert Tip for Biologists/Ecologists: Gain extensive field research experience and proficiency in statistical analysis software (R, Python). Specializing in areas like molecular biology, conservation genetics, or population ecology can lead to unique research or applied roles."},
	{ID: "sci2", Keywords: []string{"chemist", "analytical chemist", "organic chemist", "materials scientist", "lab researcher"}, Content: "Expert Tip for Chemists: Develop strong laboratory skills, including proficiency with analytical instrumentation (e.g., HPLC, GC-MS, NMR). A PhD is often required for independent research-intensive roles in academia or industry."},
	{ID: "sci3", Keywords: []string{"physicist", "astrophysicist", "particle physicist", "quantum physicist", "research scientist"}, Content: "Expert Tip for Physicists: Strong mathematical, computational (Python, C++), and modeling skills are essential. Postdoctoral research is a common path for academic or advanced R&D roles. Clearly communicating complex ideas is also important."},
	{ID: "sci4", Keywords: []string{"geologist", "geoscientist", "hydrogeologist", "environmental geologist", "seismologist"}, Content: "Expert Tip for Geologists: Field experience, GIS skills, and data interpretation are highly valued. Specializations can include hydrogeology, petroleum geology, volcanology, or environmental remediation."},
	{ID: "sci5", Keywords: []string{"archaeologist", "anthropologist", "cultural heritage", "museum curator"}, Content: "Expert Tip for Archaeologists/Anthropologists: Gain field school experience, develop meticulous recording and analytical skills. Understanding cultural heritage laws and ethical considerations is crucial. For curatorial roles, museum studies or relevant advanced degrees are beneficial."},
	{ID: "sci6", Keywords: []string{"meteorologist", "climatologist", "atmospheric scientist"}, Content: "Expert Tip for Meteorologists/Climatologists: Strong background in physics, mathematics, and computer modeling. Proficiency in data analysis and weather forecasting software is essential. Communication skills are important for public-facing roles."},

	// Agriculture and environment
	{ID: "agr1", Keywords: []string{"agricultural scientist", "agronomist", "soil scientist", "horticulturist", "food scientist"}, Content: "Expert Tip for Agricultural/Food Scientists: Focus on sustainable practices, crop improvement, soil health, or food safety and processing. Laboratory and field research skills are important, as is understanding agricultural technology."},
	{ID: "env1", Keywords: []string{"environmental consultant", "sustainability manager", "environmental policy analyst", "conservation manager"}, Content: "Expert Tip for Environmental Professionals: Develop a strong understanding of environmental regulations, policy, and impact assessment methodologies. Skills in GIS, data analysis, report writing, and public communication are key."},
	{ID: "env2", Keywords: []string{"forester", "forestry technician", "natural resource manager"}, Content: "Expert Tip for Foresters: Gain experience in forest inventory, management planning, and silviculture. Knowledge of GIS, sustainable forestry practices, and fire management is often required."},

	// Hospitality and tourism
	{ID: "hos1", Keywords: []string{"hotel manager", "hospitality operations", "guest services manager", "front office manager"}, Content: "Expert Tip for Hotel Management: Gain diverse experience across hotel departments (front office, F&B, housekeeping). Strong leadership, problem-solving, customer service, and financial acumen are crucial for success."},
	{ID: "tou1", Keywords: []string{"travel agent", "tour operator", "tourism consultant", "destination manager"}, Content: "Expert Tip for Travel/Tourism Professionals: Develop in-depth knowledge of diverse destinations, travel products, and booking systems. Strong sales, communication, customer service, and organizational skills are important."},
	{ID: "evt1", Keywords: []string{"event planner", "event manager", "meeting planner", "wedding planner"}, Content: "Expert Tip for Event Planners: Exceptional organizational skills, attention to detail, and ability to multitask under pressure are key. Build a network of reliable vendors. Experience in budgeting, marketing, and logistics is essential."},

	// Legal
	{ID: "leg1", Keywords: []string{"lawyer", "attorney", "solicitor", "barrister", "legal counsel"}, Content: "Expert Tip for Lawyers: Specialize in a field of law (e.g., corporate, criminal, family, intellectual property, environmental). Develop strong analytical, research, writing, and argumentation skills. Passing the bar exam in your jurisdiction is required."},
	{ID: "leg2", Keywords: []string{"paralegal", "legal assistant", "law clerk"}, Content: "Expert Tip for Paralegals: Focus on meticulous legal research, document preparation, case management, and e-discovery. Proficiency in legal software and strong organizational skills are highly valued. Certification can be beneficial."},

	// Other roles
	{ID: "oth1", Keywords: []string{"librarian", "archivist", "information specialist"}, Content: "Expert Tip: Develop skills in digital resource management, cataloging, and user services. A Master's in Library Science (MLS) or Information Science is typically required."},
	{ID: "oth2", Keywords: []string{"translator", "interpreter", "linguist"}, Content: "Expert Tip: Achieve native-level fluency in at least two languages. Specialize in a domain (e.g., medical, legal, technical). Certification and cultural competency are important."},
	{ID: "oth3", Keywords: []string{"pilot", "flight instructor", "airline pilot", "aviation"}, Content: "Expert Tip: Extensive flight training and certifications (e.g., PPL, CPL, ATPL) are required. Maintain excellent health and decision-making skills under pressure. Seniority and experience are key for airline careers."},
	{ID: "oth4", Keywords: []string{"statistician", "actuary", "risk analyst"}, Content: "Expert Tip: Strong mathematical and analytical skills are essential. Master statistical software (R, SAS, Python). For actuaries, passing a series of rigorous professional exams is required."},
	{ID: "oth5", Keywords: []string{"surveyor", "land surveyor", "geomatics"}, Content: "Expert Tip: Develop precision measurement skills using GPS, an array of software and other surveying equipment. Licensure is typically required. Knowledge of property law and land development processes is important."},
}

var timetableResources = Corpus{
	{ID: "tr1", Keywords: []string{"programming", "coding", "software", "web", "developer", "python", "javascript", "java", "technical skills"}, Content: "Study Tip: Utilize interactive platforms like LeetCode, HackerRank, freeCodeCamp, or Codewars for consistent coding practice. Work on data structures and algorithms."},
	{ID: "tr2", Keywords: []string{"concepts", "theory", "fundamentals", "academic", "research", "science", "math", "scientific & academic skills"}, Content: "Study Tip: Supplement practical work with high-quality online courses from platforms like Coursera, edX, MIT OpenCourseware, or Khan Academy to build a strong theoretical foundation. Read textbooks and academic papers in your field."},
	{ID: "tr3", Keywords: []string{"projects", "portfolio", "design", "creative", "build", "develop", "creative & design skills"}, Content: "Study Tip: Ensure your timetable includes dedicated blocks for hands-on personal projects or contributions to open-source. Applying learned concepts to build something tangible is crucial for skill consolidation and a strong portfolio."},
	{ID: "tr4", Keywords: []string{"networking", "community", "career", "job search", "soft skills", "business & management skills"}, Content: "Study Tip: Allocate time for professional networking, attending virtual meetups, or engaging in online communities related to your field. Practice your communication and presentation skills."},
	{ID: "tr5", Keywords: []string{"review", "study", "memorization", "test preparation", "learning"}, Content: "Study Tip: Incorporate regular review sessions using techniques like spaced repetition (e.g., Anki for flashcards) to improve long-term retention of key concepts and facts."},
	{ID: "tr6", Keywords: []string{"language learning", "linguistics", "translation", "vocabulary", "grammar", "languages"}, Content: "Study Tip for Language Learning: Immerse yourself as much as possible. Use apps like Duolingo or Babbel for daily practice, watch media in the target language, and try to find conversation partners."},
	{ID: "tr7", Keywords: []string{"arts", "music", "dance", "acting", "practice", "technique", "creative & design skills"}, Content: "Study Tip for Arts/Performance: Dedicate significant time to deliberate practice of your craft. Seek feedback from mentors or peers. Record yourself to identify areas for improvement."},
	{ID: "tr8", Keywords: []string{"trades", "hands-on", "practical skills", "apprenticeship"}, Content: "Study Tip for Trades: Focus on hands-on practice and understanding safety protocols. If in an apprenticeship, actively seek mentorship and diverse experiences on the job."},
	{ID: "tr9", Keywords: []string{"health", "medical", "clinical skills", "anatomy", "physiology", "medicine & healthcare"}, Content: "Study Tip for Health/Medical Fields: Combine book study with practical application or observation if possible. Use anatomical models, case studies, and practice clinical reasoning."},
}
