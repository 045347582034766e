package newsroom

// DefaultIntake returns the sample coverage every new session starts with.
func DefaultIntake() NewsIntake {
	return NewsIntake{
		Topic:      "Pelantikan Rektor Universitas Muhammadiyah Gresik Periode 2025–2029",
		EventType:  "Seremonial Pendidikan",
		Location:   "Kampus Universitas Muhammadiyah Gresik (UMG), Gresik, Jawa Timur",
		DateTime:   "Senin, 10 Februari 2025, Pukul 09.00 WIB",
		Organizer:  "Pimpinan Pusat (PP) Muhammadiyah",
		KeyFigures: "Prof. Dr. Khoirul Anwar, S.Pd., M.Pd. (Rektor Baru), Nadhirotul Laili (Rektor Lama)",
		What:       "Pelantikan Rektor baru Universitas Muhammadiyah Gresik periode 2025–2029.",
		Who:        "Prof. Dr. Khoirul Anwar dilantik oleh PP Muhammadiyah, menggantikan Nadhirotul Laili.",
		When:       "Senin, 10 Februari 2025, pukul 09.00 WIB.",
		Where:      "Kampus UMG, Gresik, Jawa Timur.",
		Why:        "Pergantian kepemimpinan dan kelanjutan pengembangan institusi pendidikan UMG.",
		How:        "Prosesi pelantikan berlangsung secara resmi dan dihadiri civitas akademika serta pimpinan Muhammadiyah.",
		Interviewees: []Interviewee{
			{ID: "1", Name: "Prof. Dr. Khoirul Anwar", Title: "Rektor Baru UMG"},
			{ID: "2", Name: "Perwakilan PP Muhammadiyah", Title: "Pimpinan Pusat"},
			{ID: "3", Name: "Nadhirotul Laili", Title: "Rektor Periode 2021-2025"},
		},
	}
}
