package portfolio

var (
	aboutMe = `I'm a computer science student at IIIT Allahabad who enjoys building things end to end,
	from low-level servers written by hand to full-stack products and machine learning systems.
	Most of my projects start with a problem I ran into and turn into a chance to learn a new tool,
	and outside of projects you'll usually find me mentoring juniors in algorithms or
	organizing something on campus.`

	defaultProfile = Profile{
		Name:     "Ayush",
		Headline: "Full Stack Developer & Competitive Programmer",
		About:    aboutMe,
		GitHub:   "https://github.com/Ayush27641",
	}

	defaultFilterTags = []string{"Full Stack", "AI", "Machine Learning", "Low Level Development"}

	defaultPositions = []Position{
		{
			ID:           0,
			Title:        "Member, Algorithmus Club",
			Organization: "",
			Period:       "2024 - Present",
			Color:        ColorBlue,
			Icon:         IconCode,
			Skills:       []string{"Data Structures", "Algorithms", "Competitive Programming", "Technical Mentoring"},
			Responsibilities: []string{
				"Organized DSA bootcamps and competitive programming workshops to mentor students in algorithmic thinking",
				"Actively mentor juniors in problem-solving techniques, data structures, and algorithm optimization",
				"Collaborated with other developers to host coding contests and algorithm-focused tech talks",
			},
		},
		{
			ID:           1,
			Title:        "Member, Paryavaran Shakti Club",
			Organization: "Environmental Club, IIIT Allahabad",
			Period:       "2024 - Present",
			Color:        ColorGreen,
			Icon:         IconUsers,
			Skills:       []string{"Environmental Awareness", "Sustainability Initiatives", "Community Outreach", "Event Planning"},
			Responsibilities: []string{
				"Organized tree plantation drives and environmental awareness campaigns across the campus",
				"Led initiatives for waste management and promoting sustainable practices among 2000+ students",
				"Coordinated Earth Day celebrations and environmental workshops to raise ecological consciousness",
			},
		},
		{
			ID:           2,
			Title:        "Team Leader at Multiple Competitions",
			Organization: "Odoo Hackathon 2025 & Algo Utsav Competition",
			Period:       "2024 - 2025",
			Color:        ColorOrange,
			Icon:         IconAward,
			Skills:       []string{"Team Leadership", "Algorithm Design", "Development", "Strategic Planning"},
			Responsibilities: []string{
				"Led a 4-member team to Top 30 finish out of 2200+ teams in Algo Utsav, architecting efficient algorithms and coordinating problem-solving strategies",
				"Guided team to Top 50 placement out of 19,000+ registrations at Odoo Hackathon 2025, managing frontend API development and prototype delivery",
				"Coordinated task distribution, mentored team members in competitive programming techniques, and ensured timely submission of solutions",
				"Successfully secured a full-time job offer from Odoo through effective team leadership and technical excellence",
			},
		},
	}

	defaultProjects = []Project{
		{
			ID:          "quick-court",
			Name:        "Quick Court",
			Description: "Scalable full-stack sports venue booking platform with real-time synchronization, analytics dashboards, and multi-role authentication supporting 1,000+ users.",
			Photo:       "/images/quickcourt.jpeg",
			URL:         "https://github.com/Ayush27641/QuiickCourt.git",
			Tags:        []string{"React", "Node.js", "PostgreSQL", "Supabase", "Socket.IO", "Full Stack"},
			Date:        "2024",
			Featured:    true,
		},
		{
			ID:          "wealth-watcher",
			Name:        "Wealth Watcher",
			Description: "AI-powered finance management platform with GenAI receipt scanner, automated workflows, and interactive dashboards. Achieved 99.9% uptime with intelligent data extraction.",
			Photo:       "/images/wealth.jpeg",
			URL:         "https://wealth-watcher-8yj1.vercel.app/",
			Tags:        []string{"Next.js", "Supabase", "Prisma", "AI", "Tailwind CSS", "Full Stack"},
			Date:        "2024",
			Featured:    true,
		},
		{
			ID:          "steganography-framework",
			Name:        "Steganography Detection Framework",
			Description: "Advanced deep learning system using custom SRNet architecture for steganography detection. Achieved 93.9% accuracy on 10,000+ images with real-time steganalysis capabilities.",
			Photo:       "/images/stegano.jpg",
			URL:         "https://github.com/Ayush27641/Steganography_DeepLearning.git",
			Tags:        []string{"Python", "TensorFlow", "OpenCV", "Machine Learning", "Computer Vision"},
			Date:        "2024",
			Featured:    true,
		},
		{
			ID:          "drconnect",
			Name:        "DrConnect",
			Description: "Healthcare appointment and prescription management system with secure authentication, doctor directory, payment integration via Razorpay, and real-time notifications for seamless patient care.",
			Photo:       "/images/drconnect.png",
			URL:         "https://github.com/Ayush27641/DR.CONNECT.git",
			Tags:        []string{"React", "Redux", "Tailwind CSS", "Razorpay", "Healthcare", "Full Stack"},
			Date:        "2024",
			Featured:    true,
		},
		{
			ID:          "movie-recommender-system",
			Name:        "Movie Recommender System",
			Description: "End-to-end ML project using collaborative and content-based filtering with TF-IDF. Features EDA, model training, Streamlit/Flask web interface, and ready-to-deploy architecture.",
			Photo:       "/images/recommender_system.jpg",
			URL:         "https://github.com/Ayush27641/V-Recommender.git",
			Tags:        []string{"Python", "Machine Learning", "TF-IDF", "Streamlit", "Data Science"},
			Date:        "2024",
			Featured:    true,
		},
		{
			ID:          "v-server",
			Name:        "V-Server",
			Description: "A custom HTTP server built in C++ with handcrafted database engine, custom request parsing, optimized memory management. Features multi-threading and performance-focused architecture for high-throughput backend infrastructure.",
			Photo:       "/images/vserver.png",
			URL:         "https://github.com/Ayush27641/V-Server.git",
			Tags:        []string{"C++", "HTTP", "Custom DB", "File I/O", "Low Level Development"},
			Date:        "2024",
			Featured:    true,
		},
	}
)

// DefaultCatalog returns the built-in site content.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultProfile, defaultPositions, defaultProjects, defaultFilterTags)
	if err != nil {
		panic(err)
	}
	return c
}
