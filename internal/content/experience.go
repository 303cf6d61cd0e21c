// Package content holds the static collections bundled with the site.
// They are loaded at process start and never change.
package content

import (
	folio "github.com/niya-shroff/folio"
)

var Experiences = []folio.ExperienceEntry{
	{
		Title:       "Software Engineer",
		Company:     "JPMorgan Chase & Co.",
		Location:    "Jersey City, NJ",
		Period:      "Jul 2025 - Present",
		Type:        "Full-time",
		Description: "Full-stack software engineer within the Asset & Wealth Management Line of Business, developing enterprise-level financial applications and contributing to critical business systems.",
		Achievements: []string{
			"Developing scalable full-stack applications using modern technologies",
			"Contributing to enterprise-level financial software solutions",
			"Collaborating with cross-functional teams on high-impact projects",
		},
		Technologies: []string{"Fullstack Development", "GraphQL", "Java", "React", "Python"},
	},
	{
		Title:       "Sales Specialist",
		Company:     "Apple",
		Location:    "Holyoke, MA",
		Period:      "Nov 2024 - Jan 2025",
		Type:        "Seasonal",
		Description: "Provided exceptional customer support and technical expertise while contributing to store success and maintaining high customer satisfaction scores.",
		Achievements: []string{
			"Provided customer support by sharing product knowledge",
			"Formed business connections and relationships with business owners",
			"Positively contributed to the store's success to maintain a high net promoter score",
		},
		Technologies: []string{"Sales", "Retail Sales", "Customer Service", "Product Knowledge"},
	},
	{
		Title:       "Student IT Consultant",
		Company:     "University of Massachusetts Amherst",
		Location:    "Amherst, MA",
		Period:      "Oct 2023 - Dec 2024",
		Type:        "Part-time",
		Description: "Delivered comprehensive technical support to the university community through multiple channels including in-person assistance and remote support platforms.",
		Achievements: []string{
			"Provided in-person technical assistance to students, staff, and faculty on campus",
			"Created and managed Tier 1 support tickets in the ServiceNow platform",
			"Offered remote chat support through Bomgar platform",
		},
		Technologies: []string{"ServiceNow", "Bomgar", "Technical Support", "IT Consulting"},
	},
	{
		Title:       "Software Engineering Intern",
		Company:     "J.P. Morgan Asset Management",
		Location:    "Manhattan, NY",
		Period:      "Jun 2024 - Aug 2024",
		Type:        "Internship",
		Description: "Joined the hedge fund Highbridge's Engineering Team within the Asset & Wealth Management division, developing enterprise-level financial software solutions.",
		Achievements: []string{
			"Developed two Java backend microservices and a React frontend with Beneficial Ownership data",
			"Improved codebase by abstracting core functionalities and increasing its scalability LOB-wide",
			"Collaborated with senior engineers on high-impact financial technology projects",
		},
		Technologies: []string{"Java", "React", "Microservices", "Financial Technology", "Backend Development"},
	},
	{
		Title:       "Undergraduate Researcher",
		Company:     "Human Computer Interaction & Visualization Lab at UMass Amherst",
		Location:    "Amherst, MA",
		Period:      "Feb 2023 - Jan 2024",
		Type:        "Research",
		Description: "Conducted advanced research in data visualization and network analysis, collaborating with post-doctoral researchers and faculty members on cutting-edge HCI projects.",
		Achievements: []string{
			"Created a graph-based visualization using the Pandas framework in Python, NetworkX, and Gephi",
			"Modeled hidden network relationships using D3, React, Express, and Sigma JavaScript libraries",
			"Modeled the supervisee and supervisor relationship to provide insight into this relationship",
		},
		Technologies: []string{"Python", "Pandas", "NetworkX", "Gephi", "D3.js", "React", "Express", "Sigma.js"},
	},
	{
		Title:       "Software Engineering Intern",
		Company:     "JPMorgan Chase & Co.",
		Location:    "Jersey City, NJ",
		Period:      "Jun 2023 - Aug 2023",
		Type:        "Internship",
		Description: "Worked within the Corporate Technology LOB and Legal Tech sub-division, developing full-stack applications and gaining comprehensive experience in enterprise software development lifecycle.",
		Achievements: []string{
			"Developed a user-friendly analytics app utilizing Adobe Analytics, React.js, Flask, and Bootstrap",
			"Led weekly stand-ups and other AGILE team meetings and collaborated with senior developers",
			"Created a full-stack data extraction application working with partner and senior developers",
			"Certified as an AWS Cloud Practitioner",
		},
		Technologies: []string{"React.js", "Flask", "Bootstrap", "Adobe Analytics", "AWS", "JIRA", "Agile"},
	},
	{
		Title:       "Advancement Intern",
		Company:     "School Year Abroad",
		Location:    "North Andover, MA",
		Period:      "Jan 2022 - May 2023",
		Type:        "Internship",
		Description: "Managed donor relations and database operations for educational nonprofit organization, leading outreach initiatives and processing donor engagement activities.",
		Achievements: []string{
			"Researched 1,000+ constituents and updated their information in their CRM database",
			"Lead an outreach volunteering project and managed communication with SYA alumni/parents",
			"Certified in Raiser's Edge at the Fundamentals Level",
		},
		Technologies: []string{"Raiser's Edge", "CRM Management", "Give Campus", "Database Management"},
	},
	{
		Title:       "NPO Founder",
		Company:     "Care Cardz",
		Location:    "Chelmsford, MA",
		Period:      "Jun 2020 - May 2023",
		Type:        "Founder",
		Description: "Founded and led a nonprofit organization dedicated to spreading joy in the community through handwritten cards, managing all aspects from operations to partnerships.",
		Achievements: []string{
			"Solicited 1,500+ card donations to send out and effectively communicated with top card-making companies",
			"Coordinated 5 major card projects for healthcare workers, first responders, etc. and networked globally",
		},
		Technologies: []string{"Nonprofit Management", "Project Coordination", "Partnership Development", "Community Outreach"},
	},
}
