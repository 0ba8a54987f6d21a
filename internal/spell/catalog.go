package spell

// catalogSeed 是部署时固定的法术目录。
// 数据库迁移时写入spells表，之后不再变动。
var catalogSeed = []Spell{
	// 辅助型
	{SpellID: "s1", Name: "Alohomora", Type: TypeSupport, Description: "Opens locked objects", Color: "text-emerald-400"},
	{SpellID: "s2", Name: "Aparecium", Type: TypeSupport, Description: "Reveals invisible ink", Color: "text-cyan-300"},
	{SpellID: "s3", Name: "Descendo", Type: TypeSupport, Description: "Lowers caster down", Color: "text-blue-400"},
	{SpellID: "s4", Name: "Ascendio", Type: TypeSupport, Description: "Lifts caster into the air", Color: "text-indigo-400"},
	{SpellID: "s5", Name: "Reparo", Type: TypeSupport, Description: "Repairs objects", Color: "text-orange-400"},
	{SpellID: "s6", Name: "Wingardium Leviosa", Type: TypeSupport, Description: "Makes objects fly", Color: "text-violet-300"},
	{SpellID: "s7", Name: "Lumos & Nox", Type: TypeSupport, Description: "Illuminates and darkens wand tip", Color: "text-yellow-300"},

	// 攻击型
	{SpellID: "o1", Name: "Mimblewimble", Type: TypeOffensive, Description: "Tongue-ties victim from speaking", Color: "text-red-500"},
	{SpellID: "o2", Name: "Silencio", Type: TypeOffensive, Description: "Temporarily silences victim", Color: "text-pink-500"},
	{SpellID: "o3", Name: "Imperio", Type: TypeOffensive, Description: "Controls opponent's freewill", Color: "text-purple-600"},
	{SpellID: "o4", Name: "Arresto Momentum", Type: TypeOffensive, Description: "Slows or stops a target's velocity", Color: "text-blue-600"},
	{SpellID: "o5", Name: "Crucio", Type: TypeOffensive, Description: "Tortures opponent", Color: "text-red-600"},
	{SpellID: "o6", Name: "Oppugno", Type: TypeOffensive, Description: "Directs objects to attack victim", Color: "text-red-700"},
	{SpellID: "o7", Name: "Avada Kedavra", Type: TypeOffensive, Description: "Kills opponent", Color: "text-green-600"},

	// 防御型
	{SpellID: "d1", Name: "Specialis Revelio", Type: TypeDefensive, Description: "Reveals charms or hexes", Color: "text-teal-400"},
	{SpellID: "d2", Name: "Herbivicus", Type: TypeDefensive, Description: "Promotes plant growth", Color: "text-green-400"},
	{SpellID: "d3", Name: "Finite Incantatem", Type: TypeDefensive, Description: "Terminates all spell effects", Color: "text-amber-400"},
	{SpellID: "d4", Name: "Stupefy", Type: TypeDefensive, Description: "Renders target unconscious", Color: "text-indigo-300"},
	{SpellID: "d5", Name: "Revelio", Type: TypeDefensive, Description: "Reveals hidden objects", Color: "text-cyan-400"},
	{SpellID: "d6", Name: "Meteolojinx Recanto", Type: TypeDefensive, Description: "Ends weather effects from incantations", Color: "text-slate-300"},
	{SpellID: "d7", Name: "Expelliarmus", Type: TypeDefensive, Description: "Disarms opponent", Color: "text-yellow-400"},
}
